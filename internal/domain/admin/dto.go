package admin

import "tendorai/internal/domain/vendor"

// SetTierRequest changes a vendor's subscription tier
type SetTierRequest struct {
	Tier string `json:"tier" validate:"required"`
}

// SetStatusRequest changes a vendor's account status
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active suspended"`
}

// VendorListResponse is a page of vendors for the console
type VendorListResponse struct {
	Vendors []vendor.Vendor `json:"vendors"`
	Total   int64           `json:"total"`
}
