// Command storefront drives the L&A Pescados e Mariscos storefront core from
// the terminal: browse and filter the catalog, manage the cart persisted on
// disk, and build the WhatsApp order link. Each invocation reloads the
// persisted cart, so separate runs behave like page reloads.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lapescados/storefront/internal/broadcast"
	"github.com/lapescados/storefront/internal/catalog"
	"github.com/lapescados/storefront/internal/checkout"
	"github.com/lapescados/storefront/internal/config"
	"github.com/lapescados/storefront/internal/format"
	"github.com/lapescados/storefront/internal/repository"
	"github.com/lapescados/storefront/internal/schema"
	"github.com/lapescados/storefront/internal/service"
	"github.com/lapescados/storefront/internal/ui"
)

type app struct {
	cfg       config.Config
	logger    *zap.Logger
	formatter *format.Formatter
	store     *service.Store
	bus       *broadcast.Broadcaster
	head      *schema.Head
	builder   *checkout.Builder
	badge     *ui.Badge
	panel     *ui.Panel
}

func newApp(configPath, cartPath string, logger *zap.Logger) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cartPath != "" {
		cfg.CartPath = cartPath
	}

	formatter, err := format.New(cfg.Locale, cfg.CurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("format.New: %w", err)
	}

	repo, err := repository.NewCart(cfg.CartPath, logger)
	if err != nil {
		return nil, fmt.Errorf("repository.NewCart: %w", err)
	}

	bus := broadcast.New(logger)

	store, err := service.NewStore(repo, bus, logger)
	if err != nil {
		return nil, fmt.Errorf("service.NewStore: %w", err)
	}

	builder, err := checkout.NewBuilder(formatter, cfg.WhatsAppNumber, nil)
	if err != nil {
		return nil, fmt.Errorf("checkout.NewBuilder: %w", err)
	}

	head := schema.NewHead()

	panel, err := ui.NewPanel(formatter, cfg.PlaceholderImage, head, logger)
	if err != nil {
		return nil, fmt.Errorf("ui.NewPanel: %w", err)
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		formatter: formatter,
		store:     store,
		bus:       bus,
		head:      head,
		builder:   builder,
		badge:     ui.NewBadge(),
		panel:     panel,
	}

	bus.Subscribe(a.badge.HandleCartChange)
	bus.Subscribe(a.panel.HandleCartChange)

	return a, nil
}

func (a *app) printCart() {
	fmt.Print(a.panel.Open(a.store.Cart()))
	if a.badge.Visible() {
		fmt.Printf("Itens no carrinho: %s\n", a.badge.Text())
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zap.NewProduction: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var (
		configPath string
		cartPath   string
		a          *app
	)

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "L&A Pescados e Mariscos storefront",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(configPath, cartPath, logger)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "configuration file")
	root.PersistentFlags().StringVar(&cartPath, "cart", "", "cart file, overrides the configured path")

	root.AddCommand(
		newCatalogCmd(&a),
		newCartCmd(&a),
		newCheckoutCmd(&a),
		newDemoCmd(&a),
	)

	return root
}

func newCatalogCmd(a **app) *cobra.Command {
	var (
		category string
		search   string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List products, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := ui.NewGrid(catalog.All(), (*a).store, (*a).formatter,
				(*a).head, (*a).cfg.SearchDebounce(), (*a).logger)
			if err != nil {
				return fmt.Errorf("ui.NewGrid: %w", err)
			}
			defer grid.Stop()

			grid.SetCategory(category)
			grid.SetSearch(search)
			fmt.Print(grid.Render())

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "categoria", catalog.CategoryAll, "category filter (todos, mariscos, peixes, filetes, lombos)")
	cmd.Flags().StringVar(&search, "busca", "", "search term over name and description")

	return cmd
}

func newCartCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the cart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			(*a).printCart()
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <sku>",
		Short: "Add a product or bump its quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, ok := catalog.BySKU(args[0])
			if !ok {
				return fmt.Errorf("produto não encontrado: %s", args[0])
			}
			(*a).store.AddOrIncrement(product)
			(*a).printCart()
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <sku>",
		Short: "Add the product, or remove it if already in the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			product, ok := catalog.BySKU(args[0])
			if !ok {
				return fmt.Errorf("produto não encontrado: %s", args[0])
			}
			cart := (*a).store.Toggle(product)
			if cart.Contains(product.SKU) {
				fmt.Printf("%s adicionado ao carrinho\n", product.Name)
			} else {
				fmt.Printf("%s removido do carrinho\n", product.Name)
			}
			(*a).printCart()
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	remove := &cobra.Command{
		Use:   "remove <sku>",
		Short: "Remove a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			(*a).store.Remove(args[0])
			(*a).printCart()
			return nil
		},
	}

	qty := &cobra.Command{
		Use:   "qty <sku> <n>",
		Short: "Set a line's quantity; 0 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantidade inválida: %s", args[1])
			}
			(*a).store.SetQuantity(args[0], n)
			(*a).printCart()
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			(*a).store.Clear()
			fmt.Println("Carrinho limpo com sucesso!")
			return nil
		},
	}

	cmd.AddCommand(show, add, toggle, remove, qty, clear)
	return cmd
}

func newCheckoutCmd(a **app) *cobra.Command {
	var (
		name     string
		location string
		confirm  bool
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Build the WhatsApp order link",
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := (*a).builder.Checkout((*a).store.Cart(), name, location, confirm)

			if errors.Is(err, checkout.ErrEmptyCart) {
				fmt.Println("Seu carrinho está vazio!")
				return err
			}

			if errors.Is(err, checkout.ErrLocationMissing) {
				if !promptYesNo(cmd, "Deseja continuar sem informar a localização? (s/N) ") {
					fmt.Println("Informe a localização e tente novamente.")
					return err
				}
				link, err = (*a).builder.Checkout((*a).store.Cart(), name, location, true)
			}

			if err != nil {
				return err
			}

			fmt.Println("Pedido pronto para o WhatsApp:")
			fmt.Println(link)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "nome", "", "customer name")
	cmd.Flags().StringVar(&location, "local", "", "delivery location or reference")
	cmd.Flags().BoolVar(&confirm, "sim", false, "proceed without a location, no prompt")

	return cmd
}

func newDemoCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:    "demo",
		Short:  "Show the banner/menu interplay",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rotator := ui.NewRotator(3, (*a).cfg.BannerInterval(), func(i int) {
				fmt.Printf("slide %d\n", i+1)
			}, (*a).logger)
			menu := ui.NewMenu((*a).logger)

			menu.OnStateChange(func(open bool) {
				if open {
					fmt.Println("menu aberto, banner parado")
					rotator.Stop()
				} else {
					fmt.Println("menu fechado, banner reativado")
					rotator.Start()
				}
			})

			rotator.Start()
			time.Sleep(2*(*a).cfg.BannerInterval() + (*a).cfg.BannerInterval()/2)

			menu.Open()
			time.Sleep((*a).cfg.BannerInterval())

			menu.Close()
			time.Sleep((*a).cfg.BannerInterval() + (*a).cfg.BannerInterval()/2)

			rotator.Stop()
			return nil
		},
	}
}

func promptYesNo(cmd *cobra.Command, prompt string) bool {
	fmt.Print(prompt)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "s" || answer == "sim"
}
