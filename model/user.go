package model

import "time"

type UserRole string

const (
	DefaultUserRole UserRole = "user"
	AdminRole       UserRole = "admin"
)

type User struct {
	UserId        int64     `gorm:"column:user_id;type:serial;autoIncrement;primaryKey;" json:"user_id"`
	UserFirstName string    `gorm:"column:user_first_name;type:text;not null;" json:"user_first_name"`
	UserLastName  string    `gorm:"column:user_last_name;type:text;not null;" json:"user_last_name"`
	UserEmail     string    `gorm:"column:user_email;type:text;not null;uniqueIndex:users_user_email_key;" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;type:text;not null;" json:"-"`
	UserRole      UserRole  `gorm:"column:user_role;type:text;not null;default:'user';" json:"user_role"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"updated_at"`

	TopFive []UserMovieTopFive `gorm:"foreignKey:UserId;references:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (User) TableName() string {
	return "users"
}

//---------------------------------------
//---------------------------------------

type RegisterReq struct {
	UserFirstName string `json:"user_first_name" validate:"required,max=100"`
	UserLastName  string `json:"user_last_name" validate:"required,max=100"`
	UserEmail     string `json:"user_email" validate:"required,max=254"`
	UserPassword  string `json:"user_password" validate:"required,min=8,max=72"`
}

type LoginReq struct {
	UserEmail    string `json:"user_email" validate:"required"`
	UserPassword string `json:"user_password" validate:"required"`
}

type UserTokenRes struct {
	UserId      int64  `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
