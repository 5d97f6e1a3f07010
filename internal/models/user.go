// Package models defines the user profile types shared by the remote client,
// the listing engine, and the bookmark store. The structures mirror the
// randomuser.me response shape.
package models

import (
	"encoding/json"
	"fmt"
)

// User is an immutable user profile as returned by the remote source.
//
// Two users are considered the same person when their identity keys match
// (see Key); full field equality is never used, so a record re-fetched after
// backend data drift still compares equal to its earlier copy.
type User struct {
	Gender     string      `json:"gender"`
	Name       Name        `json:"name"`
	Location   Location    `json:"location"`
	Email      string      `json:"email"`
	Login      Login       `json:"login"`
	DOB        DateOfBirth `json:"dob"`
	Registered DateOfBirth `json:"registered"`
	Phone      string      `json:"phone"`
	Cell       string      `json:"cell"`
	ID         ID          `json:"id"`
	Picture    Picture     `json:"picture"`
	Nat        string      `json:"nat"`
}

// Key returns the derived identity key used for equality and deduplication.
func (u User) Key() string {
	return u.Email + "_" + u.Login.Username
}

// Equal reports whether u and other refer to the same person,
// comparing identity keys only.
func (u User) Equal(other User) bool {
	return u.Key() == other.Key()
}

// FullName returns "Title First Last".
func (u User) FullName() string {
	return fmt.Sprintf("%s %s %s", u.Name.Title, u.Name.First, u.Name.Last)
}

// FullAddress returns a single-line postal address.
func (u User) FullAddress() string {
	l := u.Location
	return fmt.Sprintf("%d %s, %s, %s, %s, %s",
		l.Street.Number, l.Street.Name, l.City, l.State, l.Country, l.Postcode.String())
}

// Age returns the precomputed age from the date of birth block.
func (u User) Age() int {
	return u.DOB.Age
}

// ShareText returns the plain-text summary used by the detail view's
// share action.
func (u User) ShareText() string {
	return fmt.Sprintf("%s (%d)\n%s\n%s\n%s", u.FullName(), u.Age(), u.Email, u.Phone, u.FullAddress())
}

// Name holds the three-part display name.
type Name struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// Location is the user's postal address plus coordinates and timezone.
type Location struct {
	Street      Street      `json:"street"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	Postcode    Postcode    `json:"postcode"`
	Coordinates Coordinates `json:"coordinates"`
	Timezone    Timezone    `json:"timezone"`
}

// Street is a house number and street name.
type Street struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Coordinates are decimal degrees transported as strings.
type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Timezone is a UTC offset plus a human-readable description.
type Timezone struct {
	Offset      string `json:"offset"`
	Description string `json:"description"`
}

// Login is the credentials bundle attached to every profile.
type Login struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	Password string `json:"password"`
	Salt     string `json:"salt"`
	MD5      string `json:"md5"`
	SHA1     string `json:"sha1"`
	SHA256   string `json:"sha256"`
}

// DateOfBirth carries an ISO date string and a precomputed age.
// The same shape is reused for the registration date.
type DateOfBirth struct {
	Date string `json:"date"`
	Age  int    `json:"age"`
}

// ID is a national identifier; some nationalities carry neither field.
type ID struct {
	Name  *string `json:"name"`
	Value *string `json:"value"`
}

// Picture holds avatar URLs in three sizes.
type Picture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

// Postcode is a sum type over the two shapes the remote source emits:
// a JSON string or a JSON number. It is decoded by trial parse and
// normalized to a string through String.
type Postcode struct {
	str   string
	num   int
	isNum bool
}

// StringPostcode returns a Postcode holding a string value.
func StringPostcode(s string) Postcode {
	return Postcode{str: s}
}

// IntPostcode returns a Postcode holding a numeric value.
func IntPostcode(n int) Postcode {
	return Postcode{num: n, isNum: true}
}

// String returns the normalized textual form regardless of the wire shape.
func (p Postcode) String() string {
	if p.isNum {
		return fmt.Sprintf("%d", p.num)
	}
	return p.str
}

func (p *Postcode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = StringPostcode(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = IntPostcode(n)
		return nil
	}
	return fmt.Errorf("postcode must be a string or an integer, got %s", data)
}

func (p Postcode) MarshalJSON() ([]byte, error) {
	if p.isNum {
		return json.Marshal(p.num)
	}
	return json.Marshal(p.str)
}
