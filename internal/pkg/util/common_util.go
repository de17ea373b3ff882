package util

// PtrInt 用于将 int 转换为 *int
func PtrInt(i int) *int {
	return &i
}

// PtrStr 用于将 string 转换为 *string
func PtrStr(s string) *string {
	return &s
}

// PtrFloat64 用于将 float64 转换为 *float64
func PtrFloat64(f float64) *float64 {
	return &f
}
