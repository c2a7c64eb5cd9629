// Package cli is the command-line front end of the auth API client.
//
//	client [-a url] [-t timeout] [-c file] register|login
//
// Both commands prompt for an email on one line and a password without
// echo, call the server and print its message.
package cli
