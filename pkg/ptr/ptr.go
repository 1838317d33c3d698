package ptr

// Ptr возвращает указатель на переданное значение
func Ptr[T any](v T) *T {
	return &v
}

// PtrGet разыменовывает указатель, возвращая zero value для nil
func PtrGet[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}

	return *v
}
