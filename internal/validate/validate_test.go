package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("abc"))
	assert.NoError(t, Username(strings.Repeat("a", 50)))
	assert.Error(t, Username(""))
	assert.Error(t, Username("ab"))
	assert.Error(t, Username(strings.Repeat("a", 51)))
}

func TestUsername_ErrorCarriesField(t *testing.T) {
	err := Username("ab")
	verr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "username", verr.Field)
	assert.Contains(t, verr.Message, "between 3 and 50")
}

func TestPassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Password123!", true},
		{"Abcde!", true},
		{"A!bcd", false},         // too short
		{"password123!", false},  // no uppercase
		{"PASSWORD123", false},   // no symbol
		{"", false},
		{"Abcdef", false},        // no symbol
		{"P@ssw0rd", true},
	}
	for _, tt := range tests {
		err := Password(tt.password)
		if tt.valid {
			assert.NoError(t, err, "password %q", tt.password)
		} else {
			assert.Error(t, err, "password %q", tt.password)
		}
	}
}

func TestTelephone(t *testing.T) {
	assert.NoError(t, Telephone("123-456-7890"))
	assert.Error(t, Telephone("1234567890"))
	assert.Error(t, Telephone("123-456-789"))
	assert.Error(t, Telephone("12-3456-7890"))
	assert.Error(t, Telephone("123-456-78901"))
	assert.Error(t, Telephone("abc-def-ghij"))
	assert.Error(t, Telephone(""))
}

func TestNameFields(t *testing.T) {
	assert.NoError(t, FirstName("Alice"))
	assert.Error(t, FirstName("Al"))
	assert.NoError(t, LastName("Walker"))
	assert.Error(t, LastName(""))
	assert.NoError(t, Occupation("Engineer"))
	assert.Error(t, Occupation(strings.Repeat("x", 51)))
}

func TestAddress(t *testing.T) {
	assert.NoError(t, Address("123 Main St"))
	assert.NoError(t, Address(strings.Repeat("a", 200)))
	assert.Error(t, Address("ab"))
	assert.Error(t, Address(strings.Repeat("a", 201)))
}

func TestPropertyTypeName(t *testing.T) {
	assert.NoError(t, PropertyTypeName("Apartment"))
	assert.Error(t, PropertyTypeName("Ap"))
}

func TestPrice(t *testing.T) {
	assert.NoError(t, Price("price", 101))
	assert.Error(t, Price("price", 100))
	assert.Error(t, Price("price", 0))
	assert.Error(t, Price("price", -5))
}

func TestPaymentPeriod(t *testing.T) {
	assert.NoError(t, PaymentPeriod("02-2024"))
	assert.Error(t, PaymentPeriod(""))
	assert.Error(t, PaymentPeriod("2-2024"))
	assert.Error(t, PaymentPeriod("002-2024"))
}
