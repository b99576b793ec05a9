package application

// Pagination is the page-window math for a result set of size Total
// under the given request. Pages is 0 exactly when total is 0.
type Pagination struct {
	Page  int
	Limit int
	Skip  int
	Pages int
}

// Paginate computes the window for a non-negative total and a normalized
// request (page and limit both >= 1).
func Paginate(total int, req PageRequest) Pagination {
	pages := 0
	if total > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}
	return Pagination{
		Page:  req.Page,
		Limit: req.Limit,
		Skip:  (req.Page - 1) * req.Limit,
		Pages: pages,
	}
}
