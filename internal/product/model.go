package product

type Product struct {
	ID          int
	Name        string
	Description string
	Price       int
	SellerID    int

	// Seller identity joined in on reads for the public product view.
	SellerUsername string
	SellerEmail    string
}

type CreateParams struct {
	Name        string
	Description string
	Price       int
}

// UpdateParams carries a partial update; nil fields keep their stored value.
type UpdateParams struct {
	Name        *string
	Description *string
	Price       *int
}
