package database

import (
	"fmt"
	"strings"
	"testing"

	"walletboard/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var cleanupTables = []string{
	"sns_links",
	"addresses",
	"post_likes",
	"posts",
	"audit_logs",
	"accounts",
}

func openTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{DB: db}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()
	return openTestDB(t)
}

// CreateTestAccount inserts an active public account bound to walletAddress.
func CreateTestAccount(t *testing.T, db *DB, walletAddress string) *models.Account {
	t.Helper()

	account := models.NewWalletAccount(walletAddress)
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

// CreateTestAccountWithValue inserts an account and sets its stored portfolio value and visibility.
func CreateTestAccountWithValue(t *testing.T, db *DB, walletAddress string, value string, public bool) *models.Account {
	t.Helper()

	account := CreateTestAccount(t, db, walletAddress)
	account.PortfolioValue = decimal.RequireFromString(value)
	account.IsPublic = public

	if err := db.Model(account).Select("portfolio_value", "is_public").Updates(account).Error; err != nil {
		t.Fatalf("failed to update test account: %v", err)
	}

	return account
}

func CreateTestPost(t *testing.T, db *DB, author *models.Account, content string) *models.Post {
	t.Helper()

	post := &models.Post{
		AuthorID: author.ID,
		Content:  content,
	}

	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}

	return post
}

// TestWalletAddress returns a deterministic lowercase address ending in n.
func TestWalletAddress(n int) string {
	suffix := fmt.Sprintf("%x", n)
	return "0x" + strings.Repeat("0", 40-len(suffix)) + suffix
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	return &TestDB{
		DB: openTestDB(t),
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	CleanupTestDB(tdb.t, tdb.DB)
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range cleanupTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
