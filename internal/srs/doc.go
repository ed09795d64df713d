// Package srs は単語カードの復習スケジューリング (SM-2 系アルゴリズム) を実装します。
//
// このパッケージは I/O を一切行いません。現在の復習状態と学習者の自己評価から
// 次の復習状態を計算する Transition と、復習対象 (due) のカードを並べて
// ページングする SelectDue の 2 つの純粋関数だけを公開します。
// 永続化や同一カードへの同時書き込みの制御は呼び出し側 (repository/service 層) の責務です。
//
//	state := srs.NewState(now)
//	next, err := srs.Transition(state, srs.Good, now)
package srs
