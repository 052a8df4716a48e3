package dto

import (
	"encoding/json"
	"strings"
)

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// blankSecret empties whitespace-only secrets. Anything else is kept byte for byte.
func blankSecret(fields ...*string) {
	for _, f := range fields {
		if strings.TrimSpace(*f) == "" {
			*f = ""
		}
	}
}

func (r *RegisterRequest) Normalize() {
	trim(&r.Name, &r.Email)
	blankSecret(&r.Password, &r.PasswordConfirm)
}

func (r *LoginRequest) Normalize() {
	trim(&r.Email)
	blankSecret(&r.Password)
}

func (r *ForgotPasswordRequest) Normalize() {
	trim(&r.Email)
}

func (r *UpdatePasswordRequest) Normalize() {
	trim(&r.Email)
	r.Token = json.Number(strings.TrimSpace(r.Token.String()))
	blankSecret(&r.Password, &r.PasswordConfirm)
}

func (r *SupplierRequest) Normalize() {
	trim(&r.Name)
}

func (r *CreateProductRequest) Normalize() {
	trim(&r.Name, &r.Description)
}

func (r *UpdateProductRequest) Normalize() {
	trim(&r.Name, &r.Description)
}

func (r *OrderRequest) Normalize() {
	trim(&r.OrderNumber)
}
