package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Product": "商品",
		"Output":  "出力",
		"Config":  "設定",
		"Debug":   "デバッグ",
		"Logging": "ログ",

		// Commands
		"Generate Open Graph images for product pages": "商品ページ用の Open Graph 画像を生成",
		"Render a 1200x630 product card":               "1200x630 の商品カードを描画",

		// Product flags
		"Product file (YAML or JSON)": "商品ファイル（YAML または JSON）",
		"Product title":               "商品タイトル",
		"Product description":         "商品説明",
		"Display price, e.g. $450":    "表示価格（例: $450）",
		"Product category":            "商品カテゴリ",
		"Photo URL, data URI or path; the first one is drawn": "写真の URL、データ URI またはパス（先頭のみ描画）",

		// Output flags
		"Output image path":                         "出力画像のパス",
		"Print the image as a data URI":             "画像をデータ URI として出力",
		"Write a Markdown summary to this path":     "Markdown サマリーの出力先",
		"Output format (png, jpeg)":                 "出力形式（png, jpeg）",
		"JPEG quality (1-100)":                      "JPEG 品質（1-100）",
		"Seed for the decorative dots (0 = random)": "装飾ドットのシード（0 = ランダム）",

		// Config, debug and logging flags
		"YAML configuration file":                     "YAML 設定ファイル",
		"Save intermediate images":                    "中間画像を保存",
		"Directory for debug output":                  "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error, quiet)": "ログレベル（debug, info, warn, error, quiet）",
		"Also append logs to this rotating file":      "ログをこのローテーションファイルにも追記",

		// Errors
		"Error: %s": "エラー: %s",
		"either --output or --data-uri is required":          "--output または --data-uri のいずれかが必要です",
		"a product title is required (--title or --product)": "商品タイトルが必要です（--title または --product）",

		// Summary labels
		"Card Summary": "カードサマリー",
		"Generated":    "生成日時",
		"Title":        "タイトル",
		"Price":        "価格",
		"Category":     "カテゴリ",
		"Images":       "画像数",
		"Photo":        "写真",
		"Source":       "ソース",
		"Status":       "状態",
		"Loaded":       "読み込み済み",
		"Placeholder":  "プレースホルダー",
		"File":         "ファイル",
		"Format":       "形式",
		"Dimensions":   "サイズ",
		"File Size":    "ファイルサイズ",
		"Seed":         "シード",
		"Duration":     "所要時間",
		"Item":         "項目",
		"Value":        "値",
	})
}
