package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Images
		Database
		Seed
	}

	Images struct {
		// Searched after directories given with -i and before the document's own directory
		ExtraDirs []string
		// Enables content sniffing before falling back to image/png
		SniffContent bool
	}
	Database struct {
		LogSQL bool
	}
	Seed struct {
		DatabasePath string
	}
)

// splitDirs accepts an OS path list ("a:b" on unix) and drops empty entries.
func splitDirs(raw string) []string {
	var dirs []string
	for _, d := range filepath.SplitList(raw) {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("quizforge")
	v.AutomaticEnv()
	v.SetDefault("image_dirs", "")
	v.SetDefault("sniff_images", false)
	v.SetDefault("log_sql", false)
	v.SetDefault("seed_database_path", DefaultSeedDatabasePath)

	return &Config{
		Images: Images{
			ExtraDirs:    splitDirs(v.GetString("IMAGE_DIRS")),
			SniffContent: v.GetBool("SNIFF_IMAGES"),
		},
		Database: Database{
			LogSQL: v.GetBool("LOG_SQL"),
		},
		Seed: Seed{
			DatabasePath: v.GetString("SEED_DATABASE_PATH"),
		},
	}
}
