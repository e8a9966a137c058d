// Package textlink provides a Go client SDK for the TextLink SMS and
// phone-verification API.
//
// The SDK sends SMS messages and runs phone-number verification flows
// through the TextLink HTTP API. All operations report expected failures
// (missing arguments, missing API key, network errors, API rejections)
// through the returned result value rather than through an error; the
// only error-shaped outcome is a malformed response body.
//
// Basic usage:
//
//	client := textlink.New(textlink.WithAPIKey("your-api-key"))
//
//	result, err := client.SendSMS(ctx, "+11234567890", "Hello from Go!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.OK {
//	    log.Fatal(result.Message)
//	}
//
// Verification flow:
//
//	send, _ := client.SendVerificationSMS(ctx, "+11234567890",
//	    textlink.WithServiceName("MyApp"))
//
//	// ... user receives the SMS and types the code back in ...
//
//	verify, _ := client.VerifyCode(ctx, "+11234567890", userInput)
//	fmt.Println(verify.OK)
package textlink
