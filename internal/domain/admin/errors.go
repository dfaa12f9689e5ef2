package admin

import "errors"

var ErrInvalidVendorStatus = errors.New("invalid vendor status")
