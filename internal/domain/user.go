package domain

// User is an account holder. Password is never serialised.
type User struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Password    string   `json:"-"`
	DisplayName string   `json:"displayName"`
	Email       string   `json:"email"`
	Weight      *float64 `json:"weight"`
	Height      *float64 `json:"height"`
	AvatarURL   *string  `json:"avatarUrl"`
}

// NewUser is the creation schema for users.
type NewUser struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	DisplayName string   `json:"displayName"`
	Email       string   `json:"email"`
	Weight      *Decimal `json:"weight"`
	Height      *Decimal `json:"height"`
	AvatarURL   *string  `json:"avatarUrl"`
}

// Validate checks the creation payload.
func (n NewUser) Validate() error {
	var v validator
	v.requireString("username", n.Username)
	v.requireString("password", n.Password)
	v.requireString("displayName", n.DisplayName)
	v.requireString("email", n.Email)
	v.nonNegativeDecimal("weight", n.Weight)
	v.nonNegativeDecimal("height", n.Height)
	return v.err()
}

// User builds the record for the payload. The ID is left for the store to assign.
func (n NewUser) User() User {
	return User{
		Username:    n.Username,
		Password:    n.Password,
		DisplayName: n.DisplayName,
		Email:       n.Email,
		Weight:      decimalPtr(n.Weight),
		Height:      decimalPtr(n.Height),
		AvatarURL:   n.AvatarURL,
	}
}

// UserPatch is a partial update; nil fields are left untouched.
type UserPatch struct {
	Username    *string  `json:"username"`
	Password    *string  `json:"password"`
	DisplayName *string  `json:"displayName"`
	Email       *string  `json:"email"`
	Weight      *Decimal `json:"weight"`
	Height      *Decimal `json:"height"`
	AvatarURL   *string  `json:"avatarUrl"`
}

// Validate checks the fields present in the patch.
func (p UserPatch) Validate() error {
	var v validator
	v.optionalString("username", p.Username)
	v.optionalString("password", p.Password)
	v.optionalString("displayName", p.DisplayName)
	v.optionalString("email", p.Email)
	v.nonNegativeDecimal("weight", p.Weight)
	v.nonNegativeDecimal("height", p.Height)
	return v.err()
}

// Apply merges the patch over u.
func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Weight != nil {
		u.Weight = decimalPtr(p.Weight)
	}
	if p.Height != nil {
		u.Height = decimalPtr(p.Height)
	}
	if p.AvatarURL != nil {
		u.AvatarURL = p.AvatarURL
	}
	return u
}
