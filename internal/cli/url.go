package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gobeaver/beaver-media/asset"
	"github.com/gobeaver/beaver-media/cache"
	"github.com/gobeaver/beaver-media/fetch"
	"github.com/gobeaver/beaver-media/media"
	"github.com/gobeaver/beaver-media/transformation"
)

type urlFlags struct {
	assetType      string
	deliveryType   string
	transformation string
	version        string
	suffix         string
	sign           bool
	longSignature  bool
	shorten        bool
	rootPath       bool
	s3             bool
	cache          bool
}

func newURLCmd(opts *options) *cobra.Command {
	f := &urlFlags{}

	cmd := &cobra.Command{
		Use:   "url <public-id>",
		Short: "Print the delivery URL of an asset",
		Example: `  beaver-media url folder/sample.jpg -t c_fill,w_100 --sign
  beaver-media url uploads/cat.png --s3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runURL(cmd, opts, f, args[0])
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.assetType, "type", string(asset.Image), "asset type: image, video, raw or auto")
	fl.StringVar(&f.deliveryType, "delivery", string(asset.Upload), "delivery type, e.g. upload, private, authenticated, fetch")
	fl.StringVarP(&f.transformation, "transformation", "t", "", "transformation chain, e.g. c_fill,w_100/e_sepia")
	fl.StringVar(&f.version, "version", "", "asset version")
	fl.StringVar(&f.suffix, "suffix", "", "SEO suffix")
	fl.BoolVar(&f.sign, "sign", false, "sign the URL")
	fl.BoolVar(&f.longSignature, "long-signature", false, "use a 32 character SHA-256 signature")
	fl.BoolVar(&f.shorten, "shorten", false, "shorten image/upload to iu")
	fl.BoolVar(&f.rootPath, "root-path", false, "omit asset and delivery type for image/upload")
	fl.BoolVar(&f.s3, "s3", false, "treat the argument as an S3 object key delivered through fetch")
	fl.BoolVar(&f.cache, "cache", false, "memoize URLs in the configured cache")

	return cmd
}

func runURL(cmd *cobra.Command, opts *options, f *urlFlags, source string) error {
	ctx := cmd.Context()

	s, err := loadSettings(opts)
	if err != nil {
		return err
	}

	builderOpts := []media.Option{media.WithLogger(opts.logger)}
	if f.cache {
		c, err := cache.New(s.Cache)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer c.Close()
		builderOpts = append(builderOpts, media.WithCache(c, 0))
	}

	applyURLFlags(cmd, f, &s.Media.URL)

	b, err := media.New(s.Media, builderOpts...)
	if err != nil {
		return err
	}

	var a *media.Asset
	if f.s3 {
		src, err := fetch.NewS3SourceFromConfig(ctx, s.S3)
		if err != nil {
			return err
		}
		a, err = b.Remote(ctx, src, source, asset.WithAssetType(asset.Type(f.assetType)))
		if err != nil {
			return err
		}
	} else {
		descOpts := []asset.Option{
			asset.WithAssetType(asset.Type(f.assetType)),
			asset.WithDeliveryType(asset.DeliveryType(f.deliveryType)),
		}
		if f.version != "" {
			descOpts = append(descOpts, asset.WithVersion(f.version))
		}
		if f.suffix != "" {
			descOpts = append(descOpts, asset.WithSuffix(f.suffix))
		}
		a = b.Asset(asset.Parse(source, descOpts...))
	}

	if f.transformation != "" {
		a = a.Transform(transformation.Parse(f.transformation))
	}

	u, err := a.ToURL(ctx)
	if err != nil {
		return err
	}

	opts.logger.Debug("url ready", zap.String("source", source))
	fmt.Fprintln(cmd.OutOrStdout(), u)
	return nil
}

// applyURLFlags overrides the loaded URL settings with flags given on the
// command line.
func applyURLFlags(cmd *cobra.Command, f *urlFlags, c *media.URLConfig) {
	fl := cmd.Flags()
	if fl.Changed("sign") {
		c.SignURL = f.sign
	}
	if fl.Changed("long-signature") {
		c.LongURLSignature = f.longSignature
	}
	if fl.Changed("shorten") {
		c.Shorten = f.shorten
	}
	if fl.Changed("root-path") {
		c.UseRootPath = f.rootPath
	}
}
