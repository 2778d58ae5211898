package ui

import (
	"strings"
	"testing"

	"neoflow/internal/storage"
)

func newTestVaultPane(t *testing.T, store *storage.Storage) *VaultPane {
	t.Helper()
	pane := NewVaultPane(store, createTestStyles())
	pane.SetSize(50, 20)
	pane.SetFocused(true)
	loadVaultPane(t, pane)
	return pane
}

func loadVaultPane(t *testing.T, pane *VaultPane) {
	t.Helper()
	msg := pane.LoadCmd()()
	loaded, ok := msg.(vaultLoadedMsg)
	if !ok {
		t.Fatalf("LoadCmd returned %T, want vaultLoadedMsg", msg)
	}
	if loaded.err != nil {
		t.Fatalf("vault load failed: %v", loaded.err)
	}
	pane.Update(loaded)
}

func TestVaultPaneView_Empty(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	pane := newTestVaultPane(t, store)

	output := pane.View()
	if !strings.Contains(output, "VAULT") {
		t.Error("expected pane title in output")
	}
	if !strings.Contains(output, "Vault is empty.") {
		t.Errorf("expected empty state, got:\n%s", output)
	}
}

func TestVaultPaneView_WithResources(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	if _, err := store.AddResource(storage.Resource{
		Title: "Atomic Habits",
		Type:  storage.ResourceURL,
		URL:   "https://example.com/atomic",
	}); err != nil {
		t.Fatalf("add resource failed: %v", err)
	}

	pane := newTestVaultPane(t, store)

	output := pane.View()
	if !strings.Contains(output, "[URL]") {
		t.Error("expected resource type badge in output")
	}
	if !strings.Contains(output, "Atomic Habits") {
		t.Error("expected resource title in output")
	}
	if !strings.Contains(output, "example.com") {
		t.Error("expected URL in output")
	}
}

func TestVaultPane_AddWizard(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	pane := newTestVaultPane(t, store)

	pane.Update(keyMsg("a"))
	if !pane.IsAdding() {
		t.Fatal("expected add wizard open after 'a'")
	}

	// Title step.
	pane.input.SetValue("Deep Work summary")
	pane.Update(keyMsg("enter"))
	if pane.addStep != vaultStepType {
		t.Fatalf("addStep = %d, want type step after title", pane.addStep)
	}

	// Type step: advance once (PDF -> URL) then confirm.
	pane.Update(keyMsg("l"))
	pane.Update(keyMsg("enter"))
	if pane.addStep != vaultStepURL {
		t.Fatalf("addStep = %d, want URL step after type", pane.addStep)
	}
	if pane.draft.Type != storage.ResourceURL {
		t.Fatalf("draft type = %s, want URL", pane.draft.Type)
	}

	// URL step.
	pane.input.SetValue("https://example.com/deep-work")
	cmd := pane.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected addResourceCmd on final confirm")
	}
	msg := cmd()
	added, ok := msg.(resourceAddedMsg)
	if !ok {
		t.Fatalf("command returned %T, want resourceAddedMsg", msg)
	}
	if added.err != nil {
		t.Fatalf("add resource failed: %v", added.err)
	}
	if added.resource.Title != "Deep Work summary" {
		t.Errorf("Title = %q", added.resource.Title)
	}
	if added.resource.URL != "https://example.com/deep-work" {
		t.Errorf("URL = %q", added.resource.URL)
	}
	if pane.IsAdding() {
		t.Error("expected wizard closed after save")
	}
}

func TestVaultPane_AddNoteUsesContent(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	pane := newTestVaultPane(t, store)
	pane.Update(keyMsg("a"))

	pane.input.SetValue("Why streaks work")
	pane.Update(keyMsg("enter"))

	// Cycle back one step from PDF to Note.
	pane.Update(keyMsg("h"))
	pane.Update(keyMsg("enter"))
	if pane.draft.Type != storage.ResourceNote {
		t.Fatalf("draft type = %s, want Note", pane.draft.Type)
	}

	pane.input.SetValue("Identity beats outcomes.")
	cmd := pane.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected addResourceCmd")
	}
	added := cmd().(resourceAddedMsg)
	if added.err != nil {
		t.Fatalf("add resource failed: %v", added.err)
	}
	if added.resource.Content != "Identity beats outcomes." {
		t.Errorf("Content = %q", added.resource.Content)
	}
	if added.resource.URL != "" {
		t.Errorf("URL = %q, want empty for notes", added.resource.URL)
	}
}

func TestVaultPane_CancelAdd(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	pane := newTestVaultPane(t, store)
	pane.Update(keyMsg("a"))
	pane.input.SetValue("half-typed")

	pane.Update(keyMsg("esc"))
	if pane.IsAdding() {
		t.Error("expected wizard closed after esc")
	}

	vault, _ := store.LoadVault()
	if len(vault.Resources) != 0 {
		t.Error("canceled resource should not be saved")
	}
}

func TestVaultPane_Delete(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	res, err := store.AddResource(storage.Resource{Title: "Old link", Type: storage.ResourceURL, URL: "https://example.com"})
	if err != nil {
		t.Fatalf("add resource failed: %v", err)
	}

	pane := newTestVaultPane(t, store)
	if got := pane.SelectedResource(); got == nil || got.ID != res.ID {
		t.Fatalf("SelectedResource = %+v, want the only resource", got)
	}

	cmd := pane.Update(keyMsg("x"))
	if cmd == nil {
		t.Fatal("expected deleteResourceCmd")
	}
	deleted := cmd().(resourceDeletedMsg)
	if deleted.err != nil {
		t.Fatalf("delete failed: %v", deleted.err)
	}

	vault, _ := store.LoadVault()
	if len(vault.Resources) != 0 {
		t.Error("resource should be removed from the vault")
	}
}
