package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bffgym/pos-be/models"
)

func testMembers() []models.Member {
	return []models.Member{
		{ID: "1", Name: "Ann", Phone: "0412 000 000"},
		{ID: "2", Name: "Annabel", Phone: "0413 111 111"},
		{ID: "3", Name: "Bo", Phone: ""},
	}
}

func TestResolveMemberExactNameCaseInsensitive(t *testing.T) {
	m := ResolveMember(testMembers(), "ann")
	if assert.NotNil(t, m) {
		assert.Equal(t, "1", m.ID)
	}
}

func TestResolveMemberNamePrefix(t *testing.T) {
	members := []models.Member{
		{ID: "2", Name: "Annabel"},
	}
	m := ResolveMember(members, "Anna")
	if assert.NotNil(t, m) {
		assert.Equal(t, "2", m.ID)
	}
}

func TestResolveMemberPrefixAmbiguityFirstWins(t *testing.T) {
	// "An" prefixes both Ann and Annabel; list order decides.
	m := ResolveMember(testMembers(), "An")
	if assert.NotNil(t, m) {
		assert.Equal(t, "1", m.ID)
	}
}

func TestResolveMemberByPhoneSuffix(t *testing.T) {
	// Exact name fails, prefix fails, the parenthesized phone matches
	// after whitespace normalization.
	members := []models.Member{
		{ID: "9", Name: "Someone Else", Phone: "0412 000 000"},
	}
	m := ResolveMember(members, "Ann (0412)")
	if assert.NotNil(t, m) {
		assert.Equal(t, "9", m.ID)
	}
}

func TestResolveMemberFullDatalistValue(t *testing.T) {
	// The suggestion list renders "Name (phone)".
	m := ResolveMember(testMembers(), "Zzz (0413 111 111)")
	if assert.NotNil(t, m) {
		assert.Equal(t, "2", m.ID)
	}
}

func TestResolveMemberEmptyPhoneNeverMatches(t *testing.T) {
	assert.Nil(t, ResolveMember(testMembers(), "Nobody ()"))
}

func TestResolveMemberMiss(t *testing.T) {
	assert.Nil(t, ResolveMember(testMembers(), "Charlie"))
	assert.Nil(t, ResolveMember(testMembers(), ""))
	assert.Nil(t, ResolveMember(nil, "Ann"))
}
