package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/spf13/cobra"

	"github.com/andreiashu/uszipcode"
	"github.com/andreiashu/uszipcode/internal/config"
)

// withEngine loads the configuration, applies the global flags and runs fn
// with an open search engine.
func withEngine(cmd *cobra.Command, fn func(*uszipcode.SearchEngine, *config.Config) error) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DBFilePath = db
	}
	if comprehensive, _ := cmd.Flags().GetBool("comprehensive"); comprehensive {
		cfg.Comprehensive = true
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
	}
	logger := cfg.NewLogger(cmd.ErrOrStderr())

	return uszipcode.WithSearchEngine(func(e *uszipcode.SearchEngine) error {
		return fn(e, cfg)
	}, cfg.EngineOptions(logger)...)
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("sort", "", "sort attribute (zipcode, population, dist, ...)")
	cmd.Flags().Bool("desc", false, "sort descending")
	cmd.Flags().Int("returns", 0, "maximum results, 0 for all (default from config)")
	cmd.Flags().String("type", "", "zipcode type: standard, po box, unique, military or any (default from config)")
}

func searchOptions(cmd *cobra.Command, cfg *config.Config) ([]uszipcode.SearchOption, error) {
	opts := []uszipcode.SearchOption{
		uszipcode.WithZipcodeType(cfg.ZipcodeType()),
		uszipcode.WithReturns(cfg.Search.Returns),
	}
	if cmd.Flags().Changed("type") {
		s, _ := cmd.Flags().GetString("type")
		t, err := uszipcode.ParseZipcodeType(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, uszipcode.WithZipcodeType(t))
	}
	if cmd.Flags().Changed("returns") {
		n, _ := cmd.Flags().GetInt("returns")
		opts = append(opts, uszipcode.WithReturns(n))
	}
	if s, _ := cmd.Flags().GetString("sort"); s != "" {
		k, err := uszipcode.ParseSortKey(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, uszipcode.WithSortBy(k))
	}
	if cmd.Flags().Changed("desc") {
		desc, _ := cmd.Flags().GetBool("desc")
		opts = append(opts, uszipcode.WithAscending(!desc))
	}
	return opts, nil
}

func printRecords(w io.Writer, records []uszipcode.Zipcode) error {
	out := make([]map[string]any, 0, len(records))
	for _, z := range records {
		out = append(out, z.ToMap())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(out)
}

// searchCmd builds a command running one By* search on its single argument.
func searchCmd(use, short string, search func(*uszipcode.SearchEngine, string, []uszipcode.SearchOption) ([]uszipcode.Zipcode, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(e *uszipcode.SearchEngine, cfg *config.Config) error {
				opts, err := searchOptions(cmd, cfg)
				if err != nil {
					return err
				}
				res, err := search(e, args[0], opts)
				if err != nil {
					return err
				}
				return printRecords(cmd.OutOrStdout(), res)
			})
		},
	}
	addSearchFlags(cmd)
	return cmd
}

func zipcodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zipcode <code>",
		Short: "Look up a single zipcode (short codes are zero padded)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(e *uszipcode.SearchEngine, _ *config.Config) error {
				z, err := e.ByZipcode(args[0])
				if err != nil {
					return err
				}
				if z.IsEmpty() {
					return fmt.Errorf("zipcode %s not found", uszipcode.PadZipcode(args[0]))
				}
				s, err := z.ToJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
}

func prefixCmd() *cobra.Command {
	return searchCmd("prefix <digits>", "Search zipcodes starting with the given digits",
		func(e *uszipcode.SearchEngine, arg string, opts []uszipcode.SearchOption) ([]uszipcode.Zipcode, error) {
			return e.ByPrefix(arg, opts...)
		})
}

func patternCmd() *cobra.Command {
	return searchCmd("pattern <glob>", "Search zipcodes matching a glob (* and ?) or containing the text",
		func(e *uszipcode.SearchEngine, arg string, opts []uszipcode.SearchOption) ([]uszipcode.Zipcode, error) {
			return e.ByPattern(arg, opts...)
		})
}

func stateCmd() *cobra.Command {
	return searchCmd("state <name>", "Search zipcodes of a state, by code or approximate name",
		func(e *uszipcode.SearchEngine, arg string, opts []uszipcode.SearchOption) ([]uszipcode.Zipcode, error) {
			return e.ByState(arg, opts...)
		})
}

func cityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "city <name>",
		Short: "Search zipcodes of a city by approximate name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _ := cmd.Flags().GetString("state")
			return withEngine(cmd, func(e *uszipcode.SearchEngine, cfg *config.Config) error {
				opts, err := searchOptions(cmd, cfg)
				if err != nil {
					return err
				}
				var res []uszipcode.Zipcode
				if state != "" {
					res, err = e.ByCityAndState(args[0], state, opts...)
				} else {
					res, err = e.ByCity(args[0], opts...)
				}
				if err != nil {
					return err
				}
				return printRecords(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().String("state", "", "restrict to a state (code or approximate name)")
	addSearchFlags(cmd)
	return cmd
}

// decodeGeohash returns the center of a geohash cell.
func decodeGeohash(hash string) (lat, lng float64, err error) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if hash == "" {
		return 0, 0, fmt.Errorf("empty geohash")
	}
	for _, r := range hash {
		if !strings.ContainsRune("0123456789bcdefghjkmnpqrstuvwxyz", r) {
			return 0, 0, fmt.Errorf("invalid geohash %q", hash)
		}
	}
	center := geohash.Decode(hash).Center()
	return center.Lat(), center.Lng(), nil
}

func nearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "near",
		Short: "Search zipcodes within a radius of a point, nearest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, _ := cmd.Flags().GetFloat64("lat")
			lng, _ := cmd.Flags().GetFloat64("lng")
			if hash, _ := cmd.Flags().GetString("geohash"); hash != "" {
				var err error
				if lat, lng, err = decodeGeohash(hash); err != nil {
					return err
				}
			} else if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lng") {
				return fmt.Errorf("either --geohash or both --lat and --lng are required")
			}
			return withEngine(cmd, func(e *uszipcode.SearchEngine, cfg *config.Config) error {
				radius := cfg.Search.Radius
				if cmd.Flags().Changed("radius") {
					radius, _ = cmd.Flags().GetFloat64("radius")
				}
				opts, err := searchOptions(cmd, cfg)
				if err != nil {
					return err
				}
				res, err := e.ByCoordinates(lat, lng, radius, opts...)
				if err != nil {
					return err
				}
				return printRecords(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().Float64("lat", 0, "center latitude")
	cmd.Flags().Float64("lng", 0, "center longitude")
	cmd.Flags().String("geohash", "", "center as a geohash instead of --lat/--lng")
	cmd.Flags().Float64("radius", 0, "radius in miles (default from config)")
	addSearchFlags(cmd)
	return cmd
}

type rangeSearch func(*uszipcode.SearchEngine, *uszipcode.Range, ...uszipcode.SearchOption) ([]uszipcode.Zipcode, error)

var rangeSearches = map[string]rangeSearch{
	"population":              (*uszipcode.SearchEngine).ByPopulation,
	"population_density":      (*uszipcode.SearchEngine).ByPopulationDensity,
	"land_area_in_sqmi":       (*uszipcode.SearchEngine).ByLandArea,
	"water_area_in_sqmi":      (*uszipcode.SearchEngine).ByWaterArea,
	"housing_units":           (*uszipcode.SearchEngine).ByHousingUnits,
	"occupied_housing_units":  (*uszipcode.SearchEngine).ByOccupiedHousingUnits,
	"median_home_value":       (*uszipcode.SearchEngine).ByMedianHomeValue,
	"median_household_income": (*uszipcode.SearchEngine).ByMedianHouseholdIncome,
}

func rangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range <attribute>",
		Short: "Search zipcodes by a numeric attribute range, largest first",
		Long: `Search zipcodes by a numeric attribute range. Attributes: population,
population_density, land_area_in_sqmi, water_area_in_sqmi, housing_units,
occupied_housing_units, median_home_value, median_household_income.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			search, ok := rangeSearches[args[0]]
			if !ok {
				return fmt.Errorf("unknown range attribute %q", args[0])
			}
			var r *uszipcode.Range
			if cmd.Flags().Changed("lower") || cmd.Flags().Changed("upper") {
				r = &uszipcode.Range{}
				if cmd.Flags().Changed("lower") {
					v, _ := cmd.Flags().GetFloat64("lower")
					r.Lower = &v
				}
				if cmd.Flags().Changed("upper") {
					v, _ := cmd.Flags().GetFloat64("upper")
					r.Upper = &v
				}
			}
			return withEngine(cmd, func(e *uszipcode.SearchEngine, cfg *config.Config) error {
				opts, err := searchOptions(cmd, cfg)
				if err != nil {
					return err
				}
				res, err := search(e, r, opts...)
				if err != nil {
					return err
				}
				return printRecords(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().Float64("lower", 0, "lower bound (inclusive)")
	cmd.Flags().Float64("upper", 0, "upper bound (inclusive)")
	addSearchFlags(cmd)
	return cmd
}

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the dataset file if it is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(e *uszipcode.SearchEngine, cfg *config.Config) error {
				fmt.Fprintln(cmd.OutOrStdout(), "dataset ready")
				return nil
			})
		},
	}
}
