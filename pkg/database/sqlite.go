package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// sqliteStore 是 ConversionStore 接口的 SQLite 实现
type sqliteStore struct {
	db     *sql.DB
	logger *log.Logger
}

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS converted_files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL UNIQUE,
		checksum TEXT NOT NULL,
		converted_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

// NewSQLiteStore 初始化 SQLite 数据库并返回 ConversionStore 接口实例
func NewSQLiteStore(dataSourceName string, log *log.Logger) (ConversionStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// 尝试创建表，如果不存在
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close() // 创建表失败也要关闭连接
		return nil, fmt.Errorf("failed to create converted_files table: %w", err)
	}
	log.Printf("SQLite database initialized at: %s", dataSourceName)
	return &sqliteStore{db: db, logger: log}, nil
}

// Close 关闭数据库连接
func (s *sqliteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.logger.Println("SQLite database connection closed.")
		return err
	}
	return nil
}

// AddConvertedFile 记录文件已转换，同一路径只保留最新的内容摘要
func (s *sqliteStore) AddConvertedFile(path, checksum string) error {
	_, err := s.db.Exec(`INSERT INTO converted_files (path, checksum, converted_at) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET checksum = excluded.checksum, converted_at = excluded.converted_at`,
		path, checksum, time.Now())
	if err != nil {
		s.logger.Printf("ERROR: Failed to add file %s to converted_files: %v", path, err)
		return fmt.Errorf("failed to add converted file %s: %w", path, err)
	}
	s.logger.Printf("File %s marked as converted.", path)
	return nil
}

// IsFileConverted 检查文件的该内容版本是否已转换
func (s *sqliteStore) IsFileConverted(path, checksum string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM converted_files WHERE path = ? AND checksum = ?", path, checksum).Scan(&count)
	if err != nil {
		s.logger.Printf("ERROR: Failed to check if file %s is converted: %v", path, err)
		return false, fmt.Errorf("failed to check converted status for %s: %w", path, err)
	}
	return count > 0, nil
}
