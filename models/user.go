package models

import "github.com/golang-jwt/jwt/v5"

type User struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" gorm:"unique" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" gorm:"default:user"`
	IsVerified bool   `json:"is_verified" gorm:"default:false"`
}

type UserClaims struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
