// Package memory backs the domain repository interfaces with in-process
// maps. One replayed command log owns one DB; persistence across runs is a
// non-goal of the simulation.
package memory

import (
	"github.com/marinaa13/Banking-Application/internal/bank"
)

// DB is the shared registry the repositories read from
type DB struct {
	users     map[string]*bank.User
	userOrder []*bank.User
	accounts  map[string]*bank.Account
}

// NewDB creates an empty registry
func NewDB() *DB {
	return &DB{
		users:    make(map[string]*bank.User),
		accounts: make(map[string]*bank.Account),
	}
}

// AddUser registers a user by email. Input order is preserved for output
// assembly.
func (db *DB) AddUser(user *bank.User) {
	if _, ok := db.users[user.Email()]; ok {
		return
	}
	db.users[user.Email()] = user
	db.userOrder = append(db.userOrder, user)
}

// AddAccount registers an account by IBAN
func (db *DB) AddAccount(account *bank.Account) {
	db.accounts[account.IBAN()] = account
}

// Users returns every registered user in input order
func (db *DB) Users() []*bank.User {
	return append([]*bank.User(nil), db.userOrder...)
}
