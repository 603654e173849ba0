package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirportMembership(t *testing.T) {
	for _, code := range []string{"syd", "mel", "lax", "cdg", "del", "pvg", "doh"} {
		assert.True(t, IsValidAirport(code), code)
	}

	assert.False(t, IsValidAirport("jfk"))
	assert.False(t, IsValidAirport("SYD"))
	assert.False(t, IsValidAirport(""))
}

func TestSeatingClassMembership(t *testing.T) {
	for _, class := range []string{ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst} {
		assert.True(t, IsValidSeatingClass(class), class)
	}

	assert.False(t, IsValidSeatingClass("Economy"))
	assert.False(t, IsValidSeatingClass("premium"))
	assert.False(t, IsValidSeatingClass(""))
}
