package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	experienceDomain "github.com/tharun634/JavaBot/experience/domain"
	guildconfigDomain "github.com/tharun634/JavaBot/guildconfig/domain"
	moderationDomain "github.com/tharun634/JavaBot/moderation/domain"
	preferencesDomain "github.com/tharun634/JavaBot/preferences/domain"
	qotwDomain "github.com/tharun634/JavaBot/qotw/domain"

	"github.com/tharun634/JavaBot/core/config"
)

var (
	db *gorm.DB

	// Repositories
	qotwRepo        qotwDomain.Repository
	experienceRepo  experienceDomain.Repository
	preferencesRepo preferencesDomain.Repository
	warnRepo        moderationDomain.Repository
	settingsRepo    guildconfigDomain.Repository
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "javabot",
	Short: "Community bot companion API for aggregate statistics",
	Long: `Companion service of the JavaBot community bot. Serves read-only
aggregate statistics (user profiles, guild leaderboards) over a small
REST API backed by a read-through cache.`,
}

func init() {
	time.Local = time.UTC
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if _, err := config.LoadConfig(); err != nil {
		logrus.Fatalln("Failed to load configuration: ", err.Error())
	}
	if config.Global.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalln(err)
	}
}
