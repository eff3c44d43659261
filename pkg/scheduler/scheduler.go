package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yleoer/emoji/pkg/config"
	"github.com/yleoer/emoji/pkg/converter"
	"github.com/yleoer/emoji/pkg/database"
	"github.com/yleoer/emoji/pkg/dictionary"
	"github.com/yleoer/emoji/pkg/util"
)

var errSameDirs = errors.New("output directory must differ from input directory")

// TaskScheduler 负责调度文本文件的转换任务，并在词典文件变化时重新加载词典
type TaskScheduler struct {
	cfg              *config.Config
	store            database.ConversionStore
	emoji            *converter.EmojiConverter
	textConverter    converter.TextConverter
	logger           *log.Logger
	convertMutex     sync.Mutex // 保护转换过程
	pendingJobs      map[string]*time.Timer
	pendingJobsMutex sync.Mutex // 保护 pendingJobs map
}

// NewTaskScheduler 创建一个新的 TaskScheduler 实例。
// tc 是实际用于转换的转换器（可能在 emoji 前串联了其他转换器），emoji 用于重新加载词典。
func NewTaskScheduler(
	cfg *config.Config,
	store database.ConversionStore,
	emoji *converter.EmojiConverter,
	tc converter.TextConverter,
	logger *log.Logger,
) *TaskScheduler {
	if tc == nil {
		tc = emoji
	}
	return &TaskScheduler{
		cfg:           cfg,
		store:         store,
		emoji:         emoji,
		textConverter: tc,
		logger:        logger,
		pendingJobs:   make(map[string]*time.Timer),
	}
}

// InitialScan 转换输入目录中尚未转换的文件
func (ts *TaskScheduler) InitialScan() {
	ts.logger.Printf("Performing initial scan for unconverted files in %s...", ts.cfg.InputDir)
	entries, err := os.ReadDir(ts.cfg.InputDir)
	if err != nil {
		ts.logger.Printf("ERROR: Error reading input directory %s for initial scan: %v", ts.cfg.InputDir, err)
		return
	}
	for _, entry := range entries {
		path := filepath.Join(ts.cfg.InputDir, entry.Name())
		if entry.IsDir() || !util.IsRelevantTextFile(path) {
			continue
		}
		if err := ts.ConvertFile(path); err != nil {
			ts.logger.Printf("ERROR: %v", err)
		}
	}
	ts.logger.Println("Initial scan completed.")
}

// TriggerConvert 将一个文件添加到延迟转换队列
func (ts *TaskScheduler) TriggerConvert(path string) {
	ts.pendingJobsMutex.Lock()
	defer ts.pendingJobsMutex.Unlock()
	// 如果这个文件已经有一个待定的任务，就重置计时器
	if timer, ok := ts.pendingJobs[path]; ok {
		timer.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(ts.cfg.Debounce, func() {
		if err := ts.ConvertFile(path); err != nil {
			ts.logger.Printf("ERROR: %v", err)
		}
		ts.pendingJobsMutex.Lock()
		// 转换期间可能已有新的任务登记，只移除自己
		if ts.pendingJobs[path] == timer {
			delete(ts.pendingJobs, path)
		}
		ts.pendingJobsMutex.Unlock()
	})
	ts.pendingJobs[path] = timer
	ts.logger.Printf("Scheduled conversion for %s in %v", path, ts.cfg.Debounce)
}

// Pending 返回等待执行的任务数量
func (ts *TaskScheduler) Pending() int {
	ts.pendingJobsMutex.Lock()
	defer ts.pendingJobsMutex.Unlock()
	return len(ts.pendingJobs)
}

// Stop 取消所有尚未执行的任务
func (ts *TaskScheduler) Stop() {
	ts.pendingJobsMutex.Lock()
	defer ts.pendingJobsMutex.Unlock()
	for path, timer := range ts.pendingJobs {
		timer.Stop()
		delete(ts.pendingJobs, path)
	}
}

// ConvertFile 转换单个文件并写入输出目录，内容未变化的文件会被跳过
func (ts *TaskScheduler) ConvertFile(path string) error {
	ts.convertMutex.Lock()
	defer ts.convertMutex.Unlock()

	content, err := util.ReadTextFileContent(path)
	if err != nil {
		if os.IsNotExist(err) {
			ts.logger.Printf("  -> File %s disappeared before conversion. Skipping.", path)
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	checksum := util.Checksum(content)
	converted, err := ts.store.IsFileConverted(path, checksum)
	if err != nil {
		// 即使出错也尝试转换，避免遗漏
		ts.logger.Printf("ERROR: Error checking converted status for %s: %v", path, err)
	}
	if converted {
		ts.logger.Printf("  -> File %s already converted. Skipping.", path)
		return nil
	}

	outPath := filepath.Join(ts.cfg.OutputDir, filepath.Base(path))
	if err := os.WriteFile(outPath, []byte(ts.textConverter.Convert(content)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	ts.logger.Printf("  -> Successfully converted %s to %s", path, outPath)
	return ts.store.AddConvertedFile(path, checksum)
}

// ReloadDictionary 重新读取词典文件，并以 内置词典 + 文件内容 替换当前词典。
// 读取失败时保留原来的词典。
func (ts *TaskScheduler) ReloadDictionary() error {
	if ts.cfg.DictFile == "" {
		return nil
	}
	entries, err := dictionary.Load(ts.cfg.DictFile)
	if err != nil {
		return err
	}
	d := dictionary.Defaults()
	d.Merge(entries...)
	ts.emoji.Replace(d)
	ts.logger.Printf("Dictionary reloaded from %s (%d entries).", ts.cfg.DictFile, d.Len())
	return nil
}

// Run 监听输入目录和词典文件，直到 ctx 被取消
func (ts *TaskScheduler) Run(ctx context.Context) error {
	inputDir := filepath.Clean(ts.cfg.InputDir)
	if inputDir == filepath.Clean(ts.cfg.OutputDir) {
		return errSameDirs
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating file watcher: %w", err)
	}
	defer watcher.Close()
	defer ts.Stop()

	if err := watcher.Add(inputDir); err != nil {
		return fmt.Errorf("error adding input path %s to watcher: %w", inputDir, err)
	}
	ts.logger.Printf("Monitoring input directory %s...", inputDir)
	if ts.cfg.DictFile != "" {
		// 监听所在目录，编辑器保存时常常是替换文件而不是原地写入
		dictDir := filepath.Dir(ts.cfg.DictFile)
		if dictDir != inputDir {
			if err := watcher.Add(dictDir); err != nil {
				return fmt.Errorf("error adding dictionary path %s to watcher: %w", dictDir, err)
			}
		}
		ts.logger.Printf("Monitoring dictionary file %s...", ts.cfg.DictFile)
	}

	for {
		select {
		case <-ctx.Done():
			ts.logger.Println("Watcher stopped.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			ts.handleEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ts.logger.Printf("ERROR: Watcher error: %v", err)
		}
	}
}

func (ts *TaskScheduler) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	name := filepath.Clean(event.Name)
	if ts.cfg.DictFile != "" && name == filepath.Clean(ts.cfg.DictFile) {
		ts.logger.Printf("Watcher event: %s, on dictionary %s", event.Op.String(), name)
		if err := ts.ReloadDictionary(); err != nil {
			ts.logger.Printf("ERROR: Failed to reload dictionary, keeping previous one: %v", err)
		}
		return
	}
	if filepath.Dir(name) != filepath.Clean(ts.cfg.InputDir) || !util.IsRelevantTextFile(name) {
		return
	}
	if util.IsDirectory(name) {
		return
	}
	ts.logger.Printf("Watcher event: %s, on %s", event.Op.String(), name)
	ts.TriggerConvert(name)
}
