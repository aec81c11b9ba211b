// Package main implements the interactive bookshelf command-line client.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atinyakov/bookshelf/internal/client"
)

var (
	version   string
	buildDate string
)

// repl runs the interactive shell loop, accepting commands to manage books.
func repl(api *client.Client) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("bookshelf> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, register, login, list, add, edit <id>, delete <id>, exit")
		case "register":
			email, password := client.PromptCredentials(os.Stdin)
			if err := api.Register(email, password); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("Registered and logged in")
		case "login":
			email, password := client.PromptCredentials(os.Stdin)
			if err := api.Login(email, password); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("Logged in")
		case "list":
			books, err := api.Books()
			if err != nil {
				fmt.Println(err)
				continue
			}
			if len(books) == 0 {
				fmt.Println("No books yet")
				continue
			}
			for _, b := range books {
				fmt.Printf("%s  %q by %s\n", b.ID, b.Title, b.Author)
			}
		case "add":
			title, author, description := client.PromptForBook(os.Stdin)
			book, err := api.AddBook(title, author, description)
			if err != nil {
				fmt.Println(err)
				continue
			}
			b, _ := json.MarshalIndent(book, "", "  ")
			fmt.Println(string(b))
		case "edit":
			if len(args) < 2 {
				fmt.Println("Usage: edit <id>")
				continue
			}
			changes := client.PromptBookUpdate(os.Stdin)
			book, err := api.UpdateBook(args[1], changes)
			if err != nil {
				fmt.Println(err)
				continue
			}
			b, _ := json.MarshalIndent(book, "", "  ")
			fmt.Println(string(b))
		case "delete":
			if len(args) < 2 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			if err := api.DeleteBook(args[1]); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("Book deleted")
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// main parses command-line flags and starts the shell.
func main() {
	var (
		baseURL string
		showVer bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("Bookshelf Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	repl(client.New(baseURL))
}
