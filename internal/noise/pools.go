package noise

// Character pools. They are fixed and not configurable.
const (
	Symbols      = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)
