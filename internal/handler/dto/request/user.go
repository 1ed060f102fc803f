package request

type CreateUserRequest struct {
	Alias string `json:"alias"`
	Seed  string `json:"seed"`
}
