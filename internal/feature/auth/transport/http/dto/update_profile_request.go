package dto

// UpdateProfileReq は/auth/profile (PUT) のリクエストボディを表します。
// 部分更新のため全フィールドが省略可能で、nilのフィールドは変更されません。
type UpdateProfileReq struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email" binding:"omitempty,email"`
}
