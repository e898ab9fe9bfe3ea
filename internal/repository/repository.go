// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch or persist forum
// records, abstracting SQL logic away from the service layer.
package repository
