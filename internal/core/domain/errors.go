package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrInvalidInput = errors.New("invalid request fields")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrProductNotFound = errors.New("product not found")
var ErrSupplierNotFound = errors.New("supplier not found")
var ErrNegativeStock = errors.New("stock cannot be negative")
var ErrImportParse = errors.New("backup file is not valid JSON")
var ErrForbidden = errors.New("access forbidden")
