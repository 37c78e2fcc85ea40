package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подтягивает .env (если есть) и флаг -port, который перекрывает PORT.
// Переменные, уже выставленные в окружении, godotenv не перезаписывает.
func Load(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil {
		return err
	}

	var portFlag string
	if flag.Lookup("port") == nil {
		flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
