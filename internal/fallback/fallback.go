package fallback

import (
	"fmt"
	"html"
	"strings"

	"playcraft-backend/internal/gametype"
	"playcraft-backend/internal/models"
)

// Generate builds the offline stand-in game served when every backend
// attempt has been exhausted. Deterministic: same topic, same document.
func Generate(topic string) models.Game {
	arch := gametype.Classify(topic)
	safeTopic := html.EscapeString(strings.TrimSpace(topic))
	if safeTopic == "" {
		safeTopic = "chủ đề của bạn"
	}

	questions := []struct {
		Prompt  string
		Options [4]string
		Correct int
	}{
		{
			Prompt:  fmt.Sprintf("Mục đích chính của việc học về %s là gì?", safeTopic),
			Options: [4]string{"Hiểu các khái niệm nền tảng", "Ghi nhớ máy móc", "Không có mục đích", "Chỉ để thi"},
			Correct: 0,
		},
		{
			Prompt:  fmt.Sprintf("Điều nào sau đây có thể là một yếu tố quan trọng của %s?", safeTopic),
			Options: [4]string{"Màu sắc yêu thích", "Các nguyên lý cốt lõi của lĩnh vực", "Thời tiết hôm nay", "Không yếu tố nào"},
			Correct: 1,
		},
		{
			Prompt:  fmt.Sprintf("Người làm việc chuyên nghiệp có thể áp dụng kiến thức về %s như thế nào?", safeTopic),
			Options: [4]string{"Không bao giờ áp dụng", "Chỉ trong sách vở", "Giải quyết vấn đề thực tế", "Chỉ khi được yêu cầu"},
			Correct: 2,
		},
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"vi\">\n<head>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("<title>" + safeTopic + "</title>\n")
	sb.WriteString(`<style>
body { font-family: system-ui, -apple-system, sans-serif; margin: 0; background: #f1f5f9; color: #0f172a; }
.wrap { max-width: 640px; margin: 0 auto; padding: 2rem 1rem; }
.card { background: #ffffff; border-radius: 12px; padding: 1.25rem; margin-bottom: 1rem; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
.card h2 { margin: 0 0 0.75rem; font-size: 1.05rem; }
.card button { display: block; width: 100%; text-align: left; margin: 0.4rem 0; padding: 0.6rem 0.8rem; border: 1px solid #cbd5e1; border-radius: 8px; background: #f8fafc; font-size: 0.95rem; cursor: pointer; }
.card button.correct { background: #dcfce7; border-color: #22c55e; }
.card button.wrong { background: #fee2e2; border-color: #ef4444; }
.result { text-align: center; font-weight: 600; margin-top: 1rem; }
</style>
`)
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(`<div class="wrap" id="fallback-quiz">` + "\n")
	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", safeTopic))
	sb.WriteString(fmt.Sprintf("<p>Thể loại: %s</p>\n", html.EscapeString(arch.Name)))

	for i, q := range questions {
		sb.WriteString(fmt.Sprintf(`<div class="card" data-q="%d">`+"\n<h2>%d. %s</h2>\n", i, i+1, q.Prompt))
		for j, opt := range q.Options {
			sb.WriteString(fmt.Sprintf(`<button data-correct="%t">%s</button>`+"\n", j == q.Correct, opt))
		}
		sb.WriteString("</div>\n")
	}

	sb.WriteString(`<div class="result" id="result"></div>` + "\n</div>\n")
	sb.WriteString(`<script>
(function () {
  var answered = 0, score = 0, total = 3;
  document.querySelectorAll('.card').forEach(function (card) {
    card.querySelectorAll('button').forEach(function (btn) {
      btn.addEventListener('click', function () {
        if (card.dataset.done) return;
        card.dataset.done = '1';
        answered++;
        if (btn.dataset.correct === 'true') {
          btn.classList.add('correct');
          score++;
        } else {
          btn.classList.add('wrong');
        }
        if (answered === total) {
          document.getElementById('result').textContent = 'Kết quả: ' + score + '/' + total;
        }
      });
    });
  });
})();
</script>
`)
	sb.WriteString("</body>\n</html>")

	title := strings.TrimSpace(topic)
	if title == "" {
		title = "Trò chơi học tập"
	}

	return models.Game{
		Title:       title,
		Description: "Trò chơi dự phòng được tạo tự động.",
		Content:     sb.String(),
	}
}
