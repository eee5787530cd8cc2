package catalog

// Product is one sellable window product.
type Product struct {
	ID         int64
	Name       string
	Brand      string
	WindowType string
	Material   string
	Series     string
	UnitPrice  float64
	Active     bool
}

// Brand is a window manufacturer with its pricing position.
type Brand struct {
	ID         int64
	Name       string
	Multiplier float64
	Active     bool
}

// WindowType is a style of window (doubleHung, casement, ...).
type WindowType struct {
	ID          int64
	Key         string
	DisplayName string
	Multiplier  float64
	Active      bool
}
