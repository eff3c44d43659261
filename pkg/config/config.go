package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DictFile   string        `json:"dict_file"`    // 自定义词典文件（YAML/JSON），为空则只用内置词典
	InputDir   string        `json:"input_dir"`    // watch 模式监听的目录
	OutputDir  string        `json:"output_dir"`   // 转换结果存放目录
	DataDir    string        `json:"data_dir"`     // SQLite数据库文件存放目录
	DBFileName string        `json:"db_file_name"` // SQLite数据库文件名
	DBPath     string        `json:"-"`            // 完整的数据库文件路径
	Debounce   time.Duration `json:"debounce"`     // 文件最后一次变化后等待多久再转换
	T2S        bool          `json:"t2s"`          // 转换前先将繁体中文转换为简体
}

const (
	inputDir   = "./data/in"
	outputDir  = "./data/out"
	dataDir    = "./data"
	dbFileName = "emoji.db"

	debounce = 2 * time.Second
)

// LoadConfig 从环境变量或默认值加载配置
func LoadConfig() (*Config, error) {
	// 尝试加载 .env 文件
	_ = godotenv.Load()

	cfg := &Config{
		DictFile:   os.Getenv("EMOJI_DICT_FILE"),
		InputDir:   os.Getenv("EMOJI_INPUT_DIR"),
		OutputDir:  os.Getenv("EMOJI_OUTPUT_DIR"),
		DataDir:    os.Getenv("EMOJI_DATA_DIR"),
		DBFileName: os.Getenv("EMOJI_DB_FILE_NAME"),
		Debounce:   parseDurationOrDefault(os.Getenv("EMOJI_DEBOUNCE"), debounce),
		T2S:        parseBoolOrDefault(os.Getenv("EMOJI_T2S"), false),
	}

	// 设置默认值
	if cfg.InputDir == "" {
		cfg.InputDir = inputDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = outputDir
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cfg.DBFileName == "" {
		cfg.DBFileName = dbFileName
	}
	cfg.DBPath = filepath.Join(cfg.DataDir, cfg.DBFileName)
	return cfg, nil
}

// EnsureDirs 确认 watch 模式需要的目录存在
func (cfg *Config) EnsureDirs() error {
	cfg.DBPath = filepath.Join(cfg.DataDir, cfg.DBFileName)
	if err := os.MkdirAll(cfg.InputDir, 0755); err != nil {
		return fmt.Errorf("failed to create input directory %s: %w", cfg.InputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", cfg.DataDir, err)
	}
	return nil
}

func parseDurationOrDefault(s string, defaultValue time.Duration) time.Duration {
	if s == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Warning: Could not parse duration '%s', using default '%v'. Error: %v", s, defaultValue, err)
		return defaultValue
	}
	return d
}

func parseBoolOrDefault(s string, defaultValue bool) bool {
	if s == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Printf("Warning: Could not parse bool '%s', using default '%v'. Error: %v", s, defaultValue, err)
		return defaultValue
	}
	return b
}
