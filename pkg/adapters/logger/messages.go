package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Command level messages (info)
		"Generating OG image for %s":    "%s の OG 画像を生成中",
		"Image saved to %s (%d bytes)":  "画像を %s に保存しました (%d バイト)",
		"Data URI written to %s":        "データ URI を %s に書き出しました",
		"Summary written to %s":         "サマリーを %s に書き出しました",
		"Debug output enabled in %s":    "デバッグ出力を %s に保存します",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Generation completed in %d ms": "生成が %d ms で完了しました",

		// Composer
		"Generating card for %s": "%s のカードを生成中",
		"Photo loaded: %dx%d":    "写真を読み込みました: %dx%d",
		"Card encoded: %d bytes": "カードをエンコードしました: %d バイト",
		"Card saved to %s":       "カードを %s に保存しました",

		// Photo fetcher
		"Fetching photo %s":    "写真を取得中 %s",
		"Photo decoded: %dx%d": "写真をデコードしました: %dx%d",

		// Warnings
		"Photo unavailable, drawing placeholder: %s": "写真を利用できないためプレースホルダーを描画します: %s",
		"Failed to save debug output: %s":            "デバッグ出力の保存に失敗しました: %s",
		"%d log lines could not be written to %s":    "%d 行のログを %s に書き込めませんでした",

		// Errors
		"Failed to load product: %s":   "商品情報の読み込みに失敗しました: %s",
		"Failed to generate image: %s": "画像の生成に失敗しました: %s",
		"Failed to write output: %s":   "出力の書き込みに失敗しました: %s",
	})
}
