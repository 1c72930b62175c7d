// Package signup implements the validated sign-up submission workflow.
//
// A Submitter reads the current form values, evaluates the fixed rule table
// returned by Form, compares the password with its confirmation, and calls an
// AccountCreator. Field violations are published to an ErrorSink as one
// message per field; a confirmation mismatch and any create-account failure
// are reported through a Notifier; success notifies and then asks the
// Navigator to leave the screen. No outcome is fatal and nothing is retried.
package signup
