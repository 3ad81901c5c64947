package book

import "time"

// SampleCatalog is the built-in read-only collection served when the initial
// load from the store fails, so visitors still see a browsable shelf.
func SampleCatalog() []Book {
	return []Book{
		{
			ID:            "sample-1",
			Title:         "吾輩は猫である",
			Author:        "夏目漱石",
			ISBN:          "9784101010014",
			Genre:         "fiction",
			Rating:        4,
			Comment:       "猫の視点から見た人間社会の描写が秀逸。漱石の文体の美しさを再認識。",
			Favorite:      true,
			Description:   "中学校の英語教師である珍野苦沙弥の家に飼われている猫の視点で、明治時代の人間社会を風刺的に描いた代表作。",
			PublishedDate: "1905-01-01",
			PageCount:     256,
			Thumbnail:     "https://picsum.photos/300/450?random=1",
			AddedDate:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "sample-2",
			Title:         "リーダブルコード",
			Author:        "Dustin Boswell, Trevor Foucher",
			ISBN:          "9784873115658",
			Genre:         "tech",
			Rating:        5,
			Comment:       "プログラマー必読の書。コードの可読性について具体的で実践的なアドバイスが満載。",
			Favorite:      true,
			Description:   "より良いコードを書くための実践的なテクニックを紹介。命名、コメント、制御フローなど、コードの品質向上に役立つ知識が詰まっている。",
			PublishedDate: "2012-06-23",
			PageCount:     260,
			Thumbnail:     "https://picsum.photos/300/450?random=2",
			AddedDate:     time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "sample-3",
			Title:         "FACTFULNESS",
			Author:        "ハンス・ロスリング",
			ISBN:          "9784822255090",
			Genre:         "business",
			Rating:        4,
			Comment:       "データに基づいた世界の見方を学べる良書。思い込みを正してくれる。",
			Favorite:      false,
			Description:   "私たちの世界認識がいかに偏見に満ちているかを、データを使って明らかにし、事実に基づいた正しい世界の見方を教えてくれる。",
			PublishedDate: "2019-01-01",
			PageCount:     400,
			Thumbnail:     "https://picsum.photos/300/450?random=3",
			AddedDate:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}
