package magento

import "errors"

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrPaginationLimitExceeded = errors.New("pagination limit exceeded")
)
