package contact

type CreateRequest struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Contact   string `form:"contact"`
	Birthday  string `form:"birthday"`
	Email     string `form:"email"`
}
