// Command textlink is a small CLI for the TextLink API, mainly useful for
// trying out an API key from the shell.
//
// Usage:
//
//	textlink send -to +11234567890 -text "hello"
//	textlink send-code -to +11234567890 -service MyApp
//	textlink verify -to +11234567890 -code 123456
//
// The API key is read from the TEXTLINK_API_KEY environment variable.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	textlink "github.com/textlink-sms/textlink-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: textlink <send|send-code|verify> [flags]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := textlink.New(
		textlink.WithAPIKey(os.Getenv("TEXTLINK_API_KEY")),
	)

	switch os.Args[1] {
	case "send":
		send(ctx, client, os.Args[2:])
	case "send-code":
		sendCode(ctx, client, os.Args[2:])
	case "verify":
		verify(ctx, client, os.Args[2:])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func send(ctx context.Context, client *textlink.Client, args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	to := fs.String("to", "", "recipient phone number")
	text := fs.String("text", "", "message text")
	country := fs.String("country", "", "source country code")
	fs.Parse(args)

	var opts []textlink.MessageOption
	if *country != "" {
		opts = append(opts, textlink.WithSourceCountry(*country))
	}

	result, err := client.SendSMS(ctx, *to, *text, opts...)
	if err != nil {
		fatal("send: %v", err)
	}
	printResult(result)
}

func sendCode(ctx context.Context, client *textlink.Client, args []string) {
	fs := flag.NewFlagSet("send-code", flag.ExitOnError)
	to := fs.String("to", "", "recipient phone number")
	service := fs.String("service", "", "service name shown in the SMS")
	expiration := fs.Duration("expiration", 0, "code validity duration")
	country := fs.String("country", "", "source country code")
	fs.Parse(args)

	var opts []textlink.MessageOption
	if *service != "" {
		opts = append(opts, textlink.WithServiceName(*service))
	}
	if *expiration > 0 {
		opts = append(opts, textlink.WithExpirationTime(*expiration))
	}
	if *country != "" {
		opts = append(opts, textlink.WithSourceCountry(*country))
	}

	result, err := client.SendVerificationSMS(ctx, *to, opts...)
	if err != nil {
		fatal("send-code: %v", err)
	}
	printResult(result)
}

func verify(ctx context.Context, client *textlink.Client, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	to := fs.String("to", "", "phone number being verified")
	code := fs.String("code", "", "code to check")
	fs.Parse(args)

	result, err := client.VerifyCode(ctx, *to, *code)
	if err != nil {
		fatal("verify: %v", err)
	}
	printResult(result)
}

func printResult(result interface{}) {
	if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
		fatal("encode result: %v", err)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
