package entity

type Email struct {
	To       []string
	Subject  string
	HTMLBody string
}
