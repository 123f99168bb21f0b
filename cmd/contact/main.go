package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/voxelia/landing/internal/client"
	"github.com/voxelia/landing/internal/entity"
)

func main() {
	godotenv.Load()

	defaultURL := os.Getenv("CONTACT_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}

	baseURL := flag.String("url", defaultURL, "landing server base URL")
	lastName := flag.String("last-name", "", "Nom")
	firstName := flag.String("first-name", "", "Prénom")
	phone := flag.String("phone", "", "Numéro de téléphone")
	subject := flag.String("subject", "", "Sujet de contact")
	message := flag.String("message", "", "Message")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	form := client.NewForm(*baseURL)
	form.SetFields(entity.ContactSubmission{
		LastName:  *lastName,
		FirstName: *firstName,
		Phone:     *phone,
		Subject:   *subject,
		Message:   *message,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	err := form.Submit(ctx)

	var verrs client.ValidationErrors
	if errors.As(err, &verrs) {
		for _, v := range verrs {
			fmt.Fprintf(os.Stderr, "%s\n", v)
		}
		os.Exit(2)
	}

	fmt.Println(form.Banner())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
