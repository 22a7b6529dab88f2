// memoctl is a small command line client for a memoshare service. It
// drives the offline-capable client core: every command works against
// the remote service when reachable and degrades to the local cache
// when not.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/memoshare/memoshare/internal/client/cache"
	"github.com/memoshare/memoshare/internal/client/model"
	"github.com/memoshare/memoshare/internal/client/remote"
	"github.com/memoshare/memoshare/internal/client/search"
	"github.com/memoshare/memoshare/internal/client/sync"
)

type Config struct {
	ServerURL string `env:"MEMOSHARE_SERVER" env-default:"http://localhost:3000"`
	CachePath string `env:"MEMOSHARE_CACHE"`
	Token     string `env:"MEMOSHARE_TOKEN"`
	UserID    string `env:"MEMOSHARE_USER_ID"`
}

func main() {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Errorf("Error parsing configuration from environment variables: %w", err))
	}

	if len(os.Args) < 2 {
		usage()
	}

	if os.Args[1] == "login" {
		login(cfg, os.Args[2:])
		return
	}

	coordinator := bootstrap(cfg)
	session := sync.Session{Token: cfg.Token, UserID: cfg.UserID}
	ctx := context.Background()

	switch os.Args[1] {
	case "list":
		memos, err := coordinator.MyMemos(ctx, session)
		exitOn(err)
		printMemos(memos)
	case "shared":
		memos, err := coordinator.SharedMemos(ctx, session)
		exitOn(err)
		printMemos(memos)
	case "get":
		memo, err := coordinator.Memo(ctx, session, arg(2, "memo id"))
		exitOn(err)
		fmt.Printf("%s\n%s\n", memo.Title, memo.Content)
	case "create":
		memo, err := coordinator.CreateMemo(ctx, session, arg(2, "title"), arg(3, "content"))
		exitOn(err)
		fmt.Printf("Created memo %s\n", memo.ID)
	case "update":
		memo, err := coordinator.UpdateMemo(ctx, session, arg(2, "memo id"), arg(3, "title"), arg(4, "content"))
		exitOn(err)
		fmt.Printf("Updated memo %s\n", memo.ID)
	case "delete":
		exitOn(coordinator.DeleteMemo(ctx, session, arg(2, "memo id")))
		fmt.Println("Deleted")
	case "share":
		exitOn(coordinator.ShareMemo(ctx, session, arg(2, "memo id"), arg(3, "user id")))
		fmt.Println("Shared")
	case "unshare":
		exitOn(coordinator.UnshareMemo(ctx, session, arg(2, "memo id"), arg(3, "user id")))
		fmt.Println("Unshared")
	case "search":
		memos, err := coordinator.SearchMemos(ctx, session, strings.Join(os.Args[2:], " "))
		exitOn(err)
		printMemos(memos)
	default:
		usage()
	}
}

func bootstrap(cfg Config) *sync.Coordinator {
	if cfg.CachePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("Error retrieving user home dir")
		}
		if err = os.MkdirAll(filepath.Join(homeDir, "memoshare"), os.ModePerm); err != nil {
			log.Fatal(err)
		}
		cfg.CachePath = filepath.Join(homeDir, "memoshare", "cache.db")
	}

	store, err := cache.Open(cfg.CachePath)
	if err != nil {
		log.Fatal(err)
	}

	index, err := search.NewIndex()
	if err != nil {
		log.Fatal(err)
	}

	client := remote.NewClient(remote.Config{BaseURL: cfg.ServerURL})
	probe := sync.NewChecker(sync.InterfaceStatus{}, client)

	return sync.NewCoordinator(client, store, probe, index)
}

// login authenticates against the service and prints the environment
// variables the other commands expect.
func login(cfg Config, args []string) {
	flags := flag.NewFlagSet("login", flag.ExitOnError)
	username := flags.String("u", "", "username")
	password := flags.String("p", "", "password")
	if err := flags.Parse(args); err != nil || *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Usage: memoctl login -u <username> -p <password>")
		os.Exit(2)
	}

	payload, _ := json.Marshal(map[string]string{"username": *username, "password": *password})
	response, err := http.Post(cfg.ServerURL+"/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		exitOn(fmt.Errorf("%w: %v", model.ErrUnreachable, err))
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		exitOn(model.ErrUnauthenticated)
	}

	var session struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(response.Body).Decode(&session); err != nil {
		exitOn(fmt.Errorf("%w: %v", model.ErrServer, err))
	}

	fmt.Printf("export MEMOSHARE_TOKEN=%s\nexport MEMOSHARE_USER_ID=%s\n", session.Token, session.UserID)
}

func printMemos(memos []model.Memo) {
	for _, memo := range memos {
		shared := " "
		if memo.IsShared {
			shared = "*"
		}
		fmt.Printf("%s %s  %-30s %s\n", shared, memo.ID, memo.Title, memo.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
}

func arg(n int, name string) string {
	if len(os.Args) <= n {
		fmt.Fprintf(os.Stderr, "Missing argument: %s\n", name)
		os.Exit(2)
	}
	return os.Args[n]
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: memoctl <command> [arguments]

Commands:
  login -u <username> -p <password>
  list
  shared
  get <memo id>
  create <title> <content>
  update <memo id> <title> <content>
  delete <memo id>
  share <memo id> <user id>
  unshare <memo id> <user id>
  search <keywords>`)
	os.Exit(2)
}
