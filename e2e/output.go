// Copyright 2024-2026 The gce-deleter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package e2e

import (
	"bufio"
	"io"
	"log"
	"strings"
	"sync"
	"testing"
)

// Output 実行したコマンドの出力を行単位で保持する
type Output struct {
	outputs []string
	mu      sync.Mutex
}

// CollectOutputs 指定のリーダーをスキャンし、結果を出力バッファにコピーし続ける
func (o *Output) CollectOutputs(prefix string, reader io.Reader) {
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := scanner.Text()
		o.mu.Lock()
		o.outputs = append(o.outputs, prefix+" "+line)
		o.mu.Unlock()
	}
}

// IsMarkerExistInOutputs 出力バッファの中に指定の文字が含まれる場合trueを返す
func (o *Output) IsMarkerExistInOutputs(marker string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, line := range o.outputs {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// Logs 現在までの出力バッファの内容を返す
func (o *Output) Logs() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.outputs, "\n")
}

// FatalWithStderrOutputs 出力バッファの内容を標準エラーに出力した上でテストをFatalさせる
func (o *Output) FatalWithStderrOutputs(t *testing.T, args ...interface{}) {
	log.Println(o.Logs())
	t.Fatal(args...)
}
