package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/yleoer/emoji/pkg/config"
	"github.com/yleoer/emoji/pkg/converter"
	"github.com/yleoer/emoji/pkg/dictionary"
)

var (
	dictFlag string
	t2sFlag  bool
)

var rootCmd = &cobra.Command{
	Use:          "emoji",
	Short:        "Replace dictionary words with emoji",
	Long:         "Replaces whole words (case-insensitive) found in a word→emoji dictionary with their emoji.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dictFlag, "dict", "", "YAML/JSON dictionary file merged over the built-in words (env EMOJI_DICT_FILE)")
	rootCmd.PersistentFlags().BoolVar(&t2sFlag, "t2s", false, "Convert Traditional Chinese to Simplified before replacing (env EMOJI_T2S)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(watchCmd)
}

// app 汇总各子命令共用的依赖
type app struct {
	cfg        *config.Config
	logger     *log.Logger
	emoji      *converter.EmojiConverter
	normalizer converter.TextConverter // 未启用 t2s 时为 nil
	text       converter.TextConverter // normalizer + emoji
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if dictFlag != "" {
		cfg.DictFile = dictFlag
	}
	if cmd.Flags().Changed("t2s") {
		cfg.T2S = t2sFlag
	}

	logger := log.New(os.Stderr, "[Emoji] ", log.LstdFlags|log.Lshortfile)

	var overrides []dictionary.Entry
	if cfg.DictFile != "" {
		overrides, err = dictionary.Load(cfg.DictFile)
		if err != nil {
			return nil, err
		}
	}
	emoji := converter.NewEmojiConverter(overrides...)
	a := &app{cfg: cfg, logger: logger, emoji: emoji, text: emoji}

	if cfg.T2S {
		normalizer, err := converter.NewOpenCCConverter(logger)
		if err != nil {
			return nil, err
		}
		a.normalizer = normalizer
		a.text = converter.Chain{normalizer, emoji}
	}
	return a, nil
}

// convertValue 对字符串先做规范化，再交给 emoji 转换器判断类型
func (a *app) convertValue(v any) (string, error) {
	if s, ok := v.(string); ok && a.normalizer != nil {
		v = a.normalizer.Convert(s)
	}
	return a.emoji.ConvertValue(v)
}
