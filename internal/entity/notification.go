package entity

type Notification struct {
	Subject   string
	Message   string
	Extension string
}
