package mail

// Email is a composed message. Sender and recipient come from the transport's
// own configuration.
type Email struct {
	Subject string
	HTML    string
	Text    string
	Headers map[string]string
}

type ContactEmailData struct {
	LastName  string
	FirstName string
	Phone     string
	Subject   string
	Message   string
}
