package main

import (
	"pharmascout/internal/api"
)

// userFacing turns a gateway error into the single line shown to the user.
func userFacing(err error) string {
	return api.UserMessage(err)
}
