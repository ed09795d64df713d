// Command vocabctl は単語帳サービスの運用・確認用 CLI です。
//
// migrate でテーブルを作成し、seed でサンプルのテナント・デッキ・カードを登録します。
// due は指定時刻での復習キューを表示し、simulate は評価の並びから復習スケジュールを計算します
// (simulate は DB に接続しません)。
package main
