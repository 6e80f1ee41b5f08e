// Package seed holds the static dataset the stores are initialized from at
// process start. The fixture mirrors a small personal blog: one owner
// account, two members, the owner's articles, and a handful of comments,
// one of which arrives already reported so the moderation queue is never
// empty on a fresh boot.
package seed

import (
	"time"

	"miniblog/api/internal/models"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("seed: bad date " + value)
	}
	return t
}

// Accounts returns the fixed credential table. Passwords are plaintext demo
// values; exactly one account carries the owner role.
func Accounts() []models.Account {
	return []models.Account{
		{
			ID:       "owner",
			Username: "owner",
			Password: "owner123",
			Email:    "owner@blog.com",
			Bio:      "這個部落格的主人，熱愛技術與生活。",
			IsOwner:  true,
			JoinDate: date("2024-01-01"),
		},
		{
			ID:       "user1",
			Username: "小明",
			Password: "user123",
			Email:    "xiaoming@example.com",
			Bio:      "喜歡技術和旅遊的工程師。",
			JoinDate: date("2024-06-15"),
			OAuth:    models.OAuthLinks{Google: true},
		},
		{
			ID:       "user2",
			Username: "小花",
			Password: "user456",
			Email:    "xiaohua@example.com",
			Bio:      "美食愛好者，週末料理達人。",
			JoinDate: date("2024-09-20"),
			OAuth:    models.OAuthLinks{GitHub: true},
		},
	}
}

// Articles returns the owner's published articles in original publication
// order. Every seeded article is public.
func Articles() []models.Article {
	articles := []models.Article{
		{
			ID:       "1",
			Title:    "新年的開始：2025年的計劃",
			Excerpt:  "新的一年，新的開始。今年我打算學習更多技術，同時也要多旅遊、多體驗生活...",
			Content:  "新的一年，新的開始。2025年對我來說是充滿期待的一年。\n\n在技術方面，我計劃深入學習 React 和 TypeScript；在生活方面，我希望能多旅遊，今年的目標是去日本和東南亞各一次。健康也是今年的重要目標，每週至少運動三次。\n\n希望這一年能夠順利、充實。",
			Tags:     []string{"生活", "計劃"},
			Date:     date("2025-01-02"),
			ReadTime: 3,
		},
		{
			ID:       "2",
			Title:    "React 18 新特性深度解析",
			Excerpt:  "React 18 帶來了許多激動人心的新特性，包括 Concurrent Mode、Suspense 改進等...",
			Content:  "React 18 是 React 發展史上的一個重要里程碑。最重要的新特性之一是 Concurrent Mode 的正式發布，配合 startTransition 可以將更新標記為非緊急。Suspense 與自動批處理也得到了重大改進。",
			Tags:     []string{"技術", "前端", "程式設計"},
			Date:     date("2025-01-15"),
			ReadTime: 6,
		},
		{
			ID:       "3",
			Title:    "東京三日遊：淺草、澀谷、新宿",
			Excerpt:  "終於實現了去東京的夢想！這次的旅行充滿了驚喜，從傳統的淺草到現代的澀谷...",
			Content:  "等了好久終於到東京了！第一天從淺草寺開始，第二天在澀谷十字路口感受人潮，第三天在新宿御苑度過。東京是一個讓人既感受到傳統又能體驗現代的城市。",
			Tags:     []string{"旅遊", "日本", "生活"},
			Date:     date("2025-01-28"),
			ReadTime: 5,
		},
		{
			ID:       "4",
			Title:    "TypeScript 5.0 新功能介紹",
			Excerpt:  "TypeScript 5.0 帶來了許多令人興奮的新功能，讓我們一起來看看...",
			Content:  "TypeScript 5.0 是一個重要的版本更新：裝飾器終於有了官方支持，const 類型參數讓字面量類型推斷更精確，配置文件也支持多重繼承了。",
			Tags:     []string{"技術", "程式設計", "前端"},
			Date:     date("2025-02-08"),
			ReadTime: 5,
		},
		{
			ID:       "5",
			Title:    "台南美食探索：牛肉湯和鱔魚意麵",
			Excerpt:  "台南是美食的天堂，這次特別為了吃而去了一趟台南，滿足了口腹之慾...",
			Content:  "說到台灣美食，不得不提台南。早上六點排隊喝牛肉湯，午餐吃蚵仔煎，晚餐是重頭戲鱔魚意麵。台南不愧是台灣美食之都。",
			Tags:     []string{"美食", "旅遊", "生活"},
			Date:     date("2025-02-22"),
			ReadTime: 4,
		},
		{
			ID:       "6",
			Title:    "閱讀《零秒思考》：提升思維速度的實踐",
			Excerpt:  "這本書徹底改變了我的思考和記錄方式，推薦給所有想要提升思考效率的人...",
			Content:  "《零秒思考》介紹了一種簡單但極為有效的思考方法：每天用A4紙手寫筆記，每張紙只寫一個主題，每條想法在1到2分鐘內完成。堅持一個月就會看到顯著的改變。",
			Tags:     []string{"書評", "生活", "成長"},
			Date:     date("2025-03-05"),
			ReadTime: 4,
		},
		{
			ID:       "7",
			Title:    "CSS Grid 和 Flexbox：何時使用哪個？",
			Excerpt:  "很多前端開發者對 Grid 和 Flexbox 的使用場景感到困惑，今天來徹底說清楚...",
			Content:  "我的原則是：如果佈局主要在一個方向上，用 Flexbox；如果需要同時控制行和列，用 Grid。實際上兩者常常搭配使用：外層用 Grid 定義整體結構，內層用 Flexbox 排列組件。",
			Tags:     []string{"技術", "前端", "程式設計"},
			Date:     date("2025-03-18"),
			ReadTime: 5,
		},
		{
			ID:       "8",
			Title:    "《寄生上流》重看有感",
			Excerpt:  "重看了這部獲得奧斯卡最佳影片的韓國電影，每次看都有新的感受...",
			Content:  "三年前第一次看《寄生上流》被劇情反轉震驚到說不出話。重看之後注意到更多細節：地下空間的隱喻、香味這個元素的運用、雨水的象徵意義。確實是一部值得反覆品味的傑作。",
			Tags:     []string{"電影", "生活"},
			Date:     date("2025-03-29"),
			ReadTime: 5,
		},
		{
			ID:       "9",
			Title:    "Node.js 後端開發入門指南",
			Excerpt:  "從零開始學習 Node.js 後端開發，涵蓋 Express、RESTful API 等核心概念...",
			Content:  "Node.js 讓 JavaScript 能在服務端運行。從 Express 路由與中間件開始，理解 RESTful API 設計原則，再整合資料庫，後續可以學習 JWT 認證與 WebSocket。",
			Tags:     []string{"技術", "後端", "程式設計"},
			Date:     date("2025-04-10"),
			ReadTime: 7,
		},
		{
			ID:       "10",
			Title:    "京都賞櫻：一個人的春日旅行",
			Excerpt:  "趁著賞櫻季節，一個人前往京都，漫步在哲學之道，感受日本最美的季節...",
			Content:  "四月初，獨自前往京都賞櫻。哲學之道兩旁的櫻花樹已經盛開，第二天清早去了嵐山的竹林大道。一個人旅行的好處是完全按照自己的節奏。",
			Tags:     []string{"旅遊", "日本", "生活"},
			Date:     date("2025-04-22"),
			ReadTime: 5,
		},
		{
			ID:       "11",
			Title:    "Vite vs Webpack：現代前端打包工具比較",
			Excerpt:  "為什麼越來越多的項目選擇 Vite 而不是 Webpack？深入分析兩者的優缺點...",
			Content:  "Vite 在開發環境下使用原生 ESM，冷啟動和 HMR 速度遠超 Webpack；生產環境打包使用 Rollup，產物更小。新項目首選 Vite，舊項目不必強行遷移。",
			Tags:     []string{"技術", "前端", "程式設計"},
			Date:     date("2025-05-07"),
			ReadTime: 6,
		},
		{
			ID:       "12",
			Title:    "居家料理：五道簡單又美味的義大利麵",
			Excerpt:  "學會這五道義大利麵，週末在家就能輕鬆做出餐廳水準的料理...",
			Content:  "分享五道我最常做的義大利麵：蒜香橄欖油麵、培根蛋麵、番茄肉醬麵、青醬麵、番茄奶油蝦麵。食材簡單、做法快速，但口味絕不馬虎。",
			Tags:     []string{"美食", "生活"},
			Date:     date("2025-05-21"),
			ReadTime: 5,
		},
		{
			ID:       "13",
			Title:    "我最近在聽的10張專輯",
			Excerpt:  "分享最近一個月反覆播放的音樂，從爵士到電子音樂，風格多元...",
			Content:  "最近在反覆聆聽幾張特別喜歡的專輯：Bill Evans Trio 的 Waltz for Debby、Radiohead 的 OK Computer、坂本龍一的 async、Mac Miller 的 Swimming、Khruangbin 的 Mordechai。",
			Tags:     []string{"音樂", "生活"},
			Date:     date("2025-06-10"),
			ReadTime: 4,
		},
		{
			ID:       "14",
			Title:    "使用 Docker 容器化你的應用",
			Excerpt:  "從基礎開始學習 Docker，掌握容器化技術，讓你的應用部署更輕鬆...",
			Content:  "Docker 已經成為現代應用開發和部署的標準工具。從映像檔與容器的基本概念開始，寫好 Dockerfile，再用 Docker Compose 管理多服務應用。",
			Tags:     []string{"技術", "後端", "程式設計"},
			Date:     date("2025-06-25"),
			ReadTime: 6,
		},
		{
			ID:       "15",
			Title:    "2026年的技術展望",
			Excerpt:  "AI、WebAssembly、邊緣計算...2026年的技術趨勢值得我們持續關注...",
			Content:  "2025年即將結束，是時候展望一下2026年：AI 整合將更加普及，WebAssembly 持續崛起，邊緣計算日漸成熟，Rust 繼續攻城略地。持續學習和適應的能力才是最重要的。",
			Tags:     []string{"技術", "程式設計", "生活"},
			Date:     date("2025-12-28"),
			ReadTime: 5,
		},
	}
	for i := range articles {
		articles[i].Author = "owner"
		articles[i].IsPublic = true
	}
	return articles
}

// Comments returns the seed comments in insertion order. The comment on
// article 15 by 小明 is already reported and undecided.
func Comments() []models.Comment {
	return []models.Comment{
		{ID: "c1", ArticleID: "1", AuthorID: "user1", AuthorName: "小明",
			Body: "新年快樂！你的2025計劃很棒，我也要好好規劃一下今年。", CreatedAt: date("2025-01-03")},
		{ID: "c2", ArticleID: "1", AuthorID: "user2", AuthorName: "小花",
			Body: "加油！日本旅行記得分享照片。", CreatedAt: date("2025-01-04")},
		{ID: "c3", ArticleID: "2", AuthorID: "user1", AuthorName: "小明",
			Body: "這篇關於 React 18 的介紹寫得很清楚！特別是自動批處理那段。", CreatedAt: date("2025-01-16")},
		{ID: "c4", ArticleID: "3", AuthorID: "user2", AuthorName: "小花",
			Body: "好羨慕你去東京！我也想去，哪家拉麵店好吃呢？", CreatedAt: date("2025-01-30")},
		{ID: "c5", ArticleID: "3", AuthorID: "user1", AuthorName: "小明",
			Body: "東京真的很棒，去過三次了還是想再去！", CreatedAt: date("2025-01-31")},
		{ID: "c6", ArticleID: "7", AuthorID: "user1", AuthorName: "小明",
			Body: "終於有人說清楚這個問題了！我一直在這兩個之間搖擺不定。", CreatedAt: date("2025-03-20")},
		{ID: "c7", ArticleID: "10", AuthorID: "user2", AuthorName: "小花",
			Body: "一個人旅行真的很棒！哲學之道是我最喜歡的地方之一。", CreatedAt: date("2025-04-23")},
		{ID: "c8", ArticleID: "15", AuthorID: "user1", AuthorName: "小明",
			Body:     "這個部落格真的很爛，什麼都不會！完全是在浪費時間。",
			CreatedAt: date("2025-12-29"),
			Reported: true, ReportReason: "留言內容具有攻擊性，對作者不尊重"},
		{ID: "c9", ArticleID: "15", AuthorID: "user2", AuthorName: "小花",
			Body: "感謝你的分享！對2026年的技術趨勢很有幫助，特別是AI那段。", CreatedAt: date("2025-12-30")},
	}
}
