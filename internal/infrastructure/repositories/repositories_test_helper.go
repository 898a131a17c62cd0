package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		email_verified BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createEmailVerificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE email_verifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		code TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createCategoryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seller_id INTEGER NOT NULL,
		category_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price REAL NOT NULL,
		image_url TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		created_at DATETIME
	);`)
}

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER NOT NULL,
		buyer_id INTEGER NOT NULL,
		seller_id INTEGER NOT NULL,
		buyer_location_id INTEGER NOT NULL,
		seller_location_id INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME
	);`)
}

func createLocationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE locations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		address TEXT NOT NULL
	);`)
}
