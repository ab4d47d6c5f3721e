package controllers

import "errors"

var (
	ErrInvalidCredentials = errors.New("username atau password salah")
	ErrInvalidTransition  = errors.New("transisi status tidak diizinkan")
)
