package util

const defaultPageSize = 10

// Paginate clamps page/size query values and converts them to offset+limit.
func Paginate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = defaultPageSize
	}
	return (page - 1) * size, size
}
