package metadata

import "tubeseo/internal/catalog"

type fallbackEntry struct {
	title       string
	description string
	tags        []string
	hashtags    []string
	thumbnail   string
}

var fallbacks = map[catalog.Category]fallbackEntry{
	catalog.CategoryTech: {
		title: "🚀 Amazing Tech Innovation You Need to See in 2024",
		description: `In this video, I'm diving deep into the latest technology trends and innovations that are shaping our future. Whether you're a tech enthusiast or just curious about what's next, this comprehensive guide will give you everything you need to know.

🔔 Subscribe for more tech content!
💬 Leave a comment with your thoughts
👍 Like if you found this helpful

Timestamps:
0:00 - Introduction
1:30 - Main Content
8:45 - Key Takeaways
10:00 - Conclusion

Follow me for more tech updates and reviews!

#Technology #Innovation #TechReview #2024Tech #TechNews`,
		tags:      []string{"technology", "tech review", "innovation", "gadgets", "software", "hardware", "tech news", "2024 tech", "tech tips", "programming", "coding", "computers", "smartphones", "AI", "machine learning"},
		hashtags:  []string{"#Technology", "#TechReview", "#Innovation", "#TechNews", "#Gadgets"},
		thumbnail: "Modern tech-themed thumbnail with bold text overlay, vibrant blue and purple gradients, sleek device silhouettes, futuristic elements, high contrast, professional lighting, centered composition with eye-catching title text",
	},
	catalog.CategoryVlog: {
		title: "📸 A Day in My Life - Behind the Scenes Vlog",
		description: `Join me for a day in my life! In this vlog, I'm taking you behind the scenes and showing you what a typical day looks like for me. From morning routines to evening wind-down, you'll see it all!

🔔 Subscribe to follow along on my journey
💬 Comment what you want to see next
👍 Like if you enjoyed this vlog

Timestamps:
0:00 - Morning Routine
2:30 - Work/Activities
6:00 - Evening
9:00 - Wrap Up

Let's stay connected!

#Vlog #DayInMyLife #LifestyleVlog #BehindTheScenes #DailyVlog`,
		tags:      []string{"vlog", "daily vlog", "lifestyle", "day in my life", "behind the scenes", "personal vlog", "vlogger", "daily life", "routine", "real life", "authentic", "lifestyle vlog", "my life", "follow me", "vlog channel"},
		hashtags:  []string{"#Vlog", "#DailyVlog", "#Lifestyle", "#DayInMyLife", "#Vlogger"},
		thumbnail: "Personal vlog thumbnail showing authentic moment, bright and colorful, casual aesthetic, person in center with natural expression, lifestyle photography style, warm tones, text overlay with video title",
	},
	catalog.CategoryShorts: {
		title: "⚡ Quick Tip That Will Change Everything #Shorts",
		description: `Quick tip that will save you time and make everything easier!

👍 Like and Follow for more tips
💬 Comment "YES" if this helped

#Shorts #QuickTip #LifeHack #Viral #Trending`,
		tags:      []string{"shorts", "short video", "quick tip", "viral", "trending", "tiktok", "bite sized", "fast", "quick", "life hack", "tip", "trick", "viral shorts", "youtube shorts", "short form"},
		hashtags:  []string{"#Shorts", "#Viral", "#Trending", "#QuickTip", "#YouTubeShorts"},
		thumbnail: "High-energy thumbnail with bold text, bright colors, dynamic composition, attention-grabbing emoji or symbol, vertical format optimized, contrasting colors, simple but eye-catching design",
	},
	catalog.CategoryGaming: {
		title: "🎮 Epic Gaming Moments - You Won't Believe This!",
		description: `Epic gaming session with unbelievable moments! Watch until the end for the most insane play you've ever seen.

🔔 Subscribe for daily gaming content
💬 Drop your thoughts in the comments
👍 Smash that like button

Timestamps:
0:00 - Intro
1:00 - Gameplay Start
5:30 - Epic Moment
8:00 - Final Thoughts

#Gaming #Gameplay #GamingVideo #LetsPlay #GamerLife`,
		tags:      []string{"gaming", "gameplay", "lets play", "walkthrough", "game review", "video games", "gamer", "gaming channel", "play through", "game tips", "gaming guide", "game", "esports", "gaming video", "live gaming"},
		hashtags:  []string{"#Gaming", "#Gamer", "#Gameplay", "#LetsPlay", "#VideoGames"},
		thumbnail: "Gaming thumbnail with game screenshot, intense action moment, dramatic lighting, bold text overlay, gaming UI elements, exciting composition, vibrant colors, player reaction or character focus",
	},
	catalog.CategoryTutorial: {
		title: "📚 Complete Tutorial - Learn This in 10 Minutes",
		description: `Complete step-by-step tutorial that will teach you everything you need to know! Perfect for beginners and those looking to level up their skills.

🔔 Subscribe for more tutorials
💬 Questions? Ask in the comments!
👍 Like if this was helpful

Timestamps:
0:00 - Introduction
1:00 - Step 1
3:00 - Step 2
6:00 - Step 3
9:00 - Final Tips

#Tutorial #HowTo #Learn #Guide #Educational`,
		tags:      []string{"tutorial", "how to", "guide", "step by step", "learn", "teaching", "education", "tips", "tricks", "help", "beginner", "easy", "simple", "complete guide", "full tutorial"},
		hashtags:  []string{"#Tutorial", "#HowTo", "#Learn", "#Guide", "#Educational"},
		thumbnail: "Clean tutorial thumbnail with step indicators, clear topic visualization, professional layout, instructional graphics, numbered steps, before/after comparison, educational aesthetic, readable fonts",
	},
	catalog.CategoryEntertainment: {
		title: "😂 This Will Make Your Day - Must Watch!",
		description: `Get ready to be entertained! This video is packed with moments that will make you laugh, think, and feel all the emotions.

🔔 Subscribe for more amazing content
💬 Comment your favorite part
👍 Like and share with friends

Follow for daily entertainment!

#Entertainment #Funny #MustWatch #Viral #Amazing`,
		tags:      []string{"entertainment", "funny", "comedy", "reaction", "interesting", "viral", "trending", "must watch", "amazing", "incredible", "wow", "epic", "fun", "entertaining", "hilarious"},
		hashtags:  []string{"#Entertainment", "#Funny", "#Viral", "#MustWatch", "#Amazing"},
		thumbnail: "Entertainment thumbnail with expressive facial reaction, bright background, bold text, exciting composition, high energy, contrasting colors, emoji elements, fun and engaging aesthetic",
	},
	catalog.CategoryEducation: {
		title: "🎓 Educational Guide - Everything You Need to Know",
		description: `Comprehensive educational content that breaks down complex topics into easy-to-understand explanations. Perfect for students and lifelong learners!

🔔 Subscribe for more educational videos
💬 Questions? Leave them below
👍 Like to support educational content

Timestamps:
0:00 - Overview
2:00 - Main Topic
7:00 - Key Concepts
10:00 - Summary

#Education #Learning #Knowledge #Educational #Study`,
		tags:      []string{"education", "educational", "learning", "knowledge", "teaching", "school", "study", "academic", "informative", "lesson", "explain", "science", "history", "facts", "educational video"},
		hashtags:  []string{"#Education", "#Learning", "#Knowledge", "#Educational", "#Study"},
		thumbnail: "Educational thumbnail with clean design, topic illustration, professional look, clear text hierarchy, academic color scheme, diagrams or charts if relevant, trustworthy presentation",
	},
	catalog.CategoryMusic: {
		title: "🎵 Amazing Music Performance - Full Video",
		description: `Amazing musical performance that you don't want to miss! Turn up the volume and enjoy!

🔔 Subscribe for more music content
💬 Request songs in the comments
👍 Like if you enjoyed this

Stream on all platforms!

#Music #Song #Performance #Audio #MusicVideo`,
		tags:      []string{"music", "song", "audio", "performance", "cover", "original", "music video", "artist", "musician", "beats", "instrumental", "vocals", "melody", "tune", "musical"},
		hashtags:  []string{"#Music", "#Song", "#MusicVideo", "#Artist", "#NewMusic"},
		thumbnail: "Music thumbnail with artistic design, album art aesthetic, performer or instrument focus, stylized text, music-themed graphics, mood-appropriate colors, professional music video look",
	},
}

// Fallback returns the canned metadata for a category. Callers get their own
// copies of the slices.
func Fallback(category catalog.Category) *VideoMetadata {
	entry, ok := fallbacks[category]
	if !ok {
		entry = fallbacks[catalog.DefaultCategory]
	}

	return &VideoMetadata{
		Title:           entry.title,
		Description:     entry.description,
		Tags:            append([]string(nil), entry.tags...),
		Hashtags:        append([]string(nil), entry.hashtags...),
		ThumbnailPrompt: entry.thumbnail,
	}
}

// FallbackTitle exposes the fixed title for a category.
func FallbackTitle(category catalog.Category) string {
	return Fallback(category).Title
}
