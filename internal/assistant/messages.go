package assistant

const comparePrompt = "Please specify two players to compare. Example: 'Compare Lamar Jackson and Josh Allen'"

const strategyTips = "💡 Strategy Tips:\n" +
	"• Target high-scoring QBs early\n" +
	"• Look for RBs with dual-threat ability\n" +
	"• WRs with consistent targets are gold\n" +
	"• Don't forget about TEs in the middle rounds"

const helpMessage = "🏈 NFL Fantasy Assistant - How I Can Help\n\n" +
	"🔮 Next Season Projections:\n" +
	"• \"Predict [Player Name]\" or \"[Player] 2025\"\n" +
	"• \"Project Lamar Jackson\"\n\n" +
	"📊 Player Analysis:\n" +
	"• \"Tell me about [Player Name]\"\n" +
	"• Just type a player name\n\n" +
	"⚖️ Player Comparisons:\n" +
	"• \"Compare [Player A] and [Player B]\"\n" +
	"• \"Josh Allen vs Lamar Jackson\"\n\n" +
	"🎯 Position Rankings:\n" +
	"• \"Top 5 QBs/RBs/WRs/TEs\"\n" +
	"• \"Recommend me a QB\"\n\n" +
	"💡 Fantasy Strategy:\n" +
	"• \"Give me fantasy advice\"\n" +
	"• \"Fantasy strategy tips\"\n\n" +
	"💬 Examples:\n" +
	"• \"Predict Caleb Williams\"\n" +
	"• \"Compare Jefferson and Chase\"\n" +
	"• \"Top 3 running backs\""

const defaultMessage = "🏈 I didn't quite understand that. Try being more specific!\n\n" +
	"💡 What I can help with:\n" +
	"• Player info: \"Tell me about Lamar Jackson\"\n" +
	"• Projections: \"Predict Josh Allen\"\n" +
	"• Comparisons: \"Compare CMC and Saquon\"\n" +
	"• Rankings: \"Top 5 QBs\"\n" +
	"• Strategy: \"Give me fantasy advice\"\n\n" +
	"🔍 Tip: Use full player names for best results!"

const missingNameMessage = "I couldn't find a player name in your request. Please try:\n\n" +
	"• \"Predict Lamar Jackson\"\n" +
	"• \"Caleb Williams 2025\"\n" +
	"• \"Predict Josh Allen\"\n\n" +
	"Make sure to use the player's full name!"

// Fallback is the reply used when Respond fails.
const Fallback = "Sorry, I ran into a problem answering that. Please try again in a moment."
