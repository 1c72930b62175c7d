// Package tui is the terminal front end of the sign-up form. A Session
// prompts for each field through a PromptDriver (survey by default), keeps
// the answers in a State that doubles as the field registry, and shows field
// errors and notices produced by a signup.Submitter.
package tui
