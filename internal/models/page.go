package models

// Page is one page of users plus the response metadata block.
type Page struct {
	Results []User `json:"results"`
	Info    Info   `json:"info"`
}

// Info echoes back the request parameters. Seed is the stability token the
// remote source actually used; replaying it on subsequent requests keeps the
// underlying random stream identical across pages.
type Info struct {
	Seed    string `json:"seed"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version"`
}
