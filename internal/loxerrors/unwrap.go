package loxerrors

// local interface to assert Unwrap() support at compile time.
// the errors package does not define one, it relies on reflection instead.
type unwrapInterface interface {
	Unwrap() error
}
